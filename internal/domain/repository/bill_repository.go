package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/internal/domain/enum"
	"github.com/kibettheo/medicore-api/pkg/pagination"
)

// BillFilterParams contains filtering parameters for bill queries
type BillFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	PatientID  *uuid.UUID
	Status     *enum.PaymentStatus
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// BillRepository defines the interface for billing data operations
type BillRepository interface {
	// Create persists a bill together with its line items
	Create(ctx context.Context, bill *entity.Bill) error
	// GetByID retrieves a bill with items, payments and claim preloaded.
	// Returns (nil, nil) when the bill does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)

	// AppendPayment atomically records a payment against the bill. The
	// paid/balance counters move under a conditional update that only
	// succeeds while balance >= payment amount, so an overpayment (or a
	// raced concurrent payment that would overdraw the balance) leaves
	// the bill untouched and returns false.
	AppendPayment(ctx context.Context, billID uuid.UUID, payment *entity.BillPayment) (bool, error)

	// AttachClaim stores an insurance claim for the bill
	AttachClaim(ctx context.Context, claim *entity.InsuranceClaim) error
	// UpdateClaimStatus moves an existing claim to a new status
	UpdateClaimStatus(ctx context.Context, billID uuid.UUID, status enum.ClaimStatus) error

	// OutstandingBalance returns the sum of unpaid balances across all
	// bills, in cents
	OutstandingBalance(ctx context.Context) (int64, error)
}

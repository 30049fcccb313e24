package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/internal/domain/enum"
	"github.com/kibettheo/medicore-api/internal/domain/repository"
	"github.com/kibettheo/medicore-api/pkg/apperror"
	"github.com/kibettheo/medicore-api/pkg/pagination"
	"github.com/kibettheo/medicore-api/pkg/utils"
)

// BillingService handles billing ledger operations
type BillingService struct {
	billRepo    repository.BillRepository
	patientRepo repository.PatientRepository
	userRepo    repository.UserRepository
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo repository.BillRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
) *BillingService {
	return &BillingService{
		billRepo:    billRepo,
		patientRepo: patientRepo,
		userRepo:    userRepo,
	}
}

// BillItemInput represents a line item on a new bill
type BillItemInput struct {
	Description string
	Category    string
	Quantity    int
	UnitPrice   float64
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	PatientID uuid.UUID
	BillDate  *time.Time
	Discount  float64
	Tax       float64
	Notes     *string
	Items     []BillItemInput
}

// CreateBill creates a bill with its line items. Items are fixed at
// creation; the derived totals come out of the item amounts, discount
// and tax.
func (s *BillingService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Bill must have at least one item")
	}
	if input.Discount < 0 || input.Tax < 0 {
		return nil, apperror.NewBadRequestError("Discount and tax cannot be negative")
	}

	patient, err := s.patientRepo.GetByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	// Bills settle against a login account, so the patient's user link
	// must resolve to an existing user
	if patient.LinkedUserID == nil {
		return nil, apperror.NewBadRequestError("Patient has no linked user account")
	}
	linkedUser, err := s.userRepo.GetByID(ctx, *patient.LinkedUserID)
	if err != nil {
		return nil, err
	}
	if linkedUser == nil {
		return nil, apperror.NewBadRequestError("Patient's linked user account does not exist")
	}

	items := make([]entity.BillItem, 0, len(input.Items))
	for i, item := range input.Items {
		if item.Quantity < 1 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Item %d has invalid quantity", i+1))
		}
		if item.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Item %d has negative unit price", i+1))
		}
		unitPriceCents := int64(item.UnitPrice * 100)
		items = append(items, entity.BillItem{
			Description: item.Description,
			Category:    item.Category,
			Quantity:    item.Quantity,
			UnitPrice:   unitPriceCents,
			Total:       unitPriceCents * int64(item.Quantity),
		})
	}

	billDate := time.Now()
	if input.BillDate != nil {
		billDate = *input.BillDate
	}

	bill := &entity.Bill{
		BillNo:    utils.GenerateBillNo(),
		PatientID: input.PatientID,
		BillDate:  billDate,
		Discount:  int64(input.Discount * 100),
		Tax:       int64(input.Tax * 100),
		Notes:     input.Notes,
		Items:     items,
	}
	bill.RecomputeTotals()

	if bill.TotalAmount < 0 {
		return nil, apperror.NewBadRequestError("Discount exceeds the billable amount")
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	return s.billRepo.GetByID(ctx, bill.ID)
}

// GetBill retrieves a bill with its items, payments and claim
func (s *BillingService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills lists bills with filtering
func (s *BillingService) ListBills(ctx context.Context, params *repository.BillFilterParams) (*pagination.PaginatedResult[entity.Bill], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}

// DeleteBill deletes a bill. Bills with recorded payments are part of the
// financial record and cannot be deleted.
func (s *BillingService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bill == nil {
		return apperror.NewNotFoundError("Bill")
	}

	if bill.AmountPaid > 0 {
		return apperror.NewConflictError("Cannot delete a bill with recorded payments")
	}

	return s.billRepo.Delete(ctx, id)
}

// RecordPaymentInput represents a payment against a bill
type RecordPaymentInput struct {
	BillID        uuid.UUID
	Amount        float64
	Method        string
	TransactionID *string
	Notes         *string
}

// RecordPayment appends a payment to a bill's ledger. Payments never edit
// or replace earlier payments, and a payment exceeding the open balance is
// rejected outright rather than capped.
func (s *BillingService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Bill, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}

	method := enum.PaymentMethod(input.Method)
	if !method.IsValid() {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Invalid payment method: %s", input.Method))
	}

	bill, err := s.billRepo.GetByID(ctx, input.BillID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	payment := &entity.BillPayment{
		Amount:        int64(input.Amount * 100),
		Method:        method,
		TransactionID: input.TransactionID,
		Notes:         input.Notes,
		PaidAt:        time.Now(),
	}

	accepted, err := s.billRepo.AppendPayment(ctx, input.BillID, payment)
	if err != nil {
		return nil, err
	}
	if !accepted {
		return nil, apperror.NewConflictError("Payment exceeds the bill's outstanding balance")
	}

	return s.billRepo.GetByID(ctx, input.BillID)
}

// AttachClaimInput represents an insurance claim submission
type AttachClaimInput struct {
	BillID        uuid.UUID
	ClaimNumber   string
	Provider      string
	AmountClaimed float64
}

// AttachClaim submits an insurance claim for a bill. A bill carries at
// most one claim, and claim amounts never touch the payment ledger.
func (s *BillingService) AttachClaim(ctx context.Context, input *AttachClaimInput) (*entity.Bill, error) {
	if input.AmountClaimed <= 0 {
		return nil, apperror.NewBadRequestError("Claimed amount must be positive")
	}

	bill, err := s.billRepo.GetByID(ctx, input.BillID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	if bill.InsuranceClaim != nil {
		return nil, apperror.NewConflictError("Bill already has an insurance claim")
	}

	amountCents := int64(input.AmountClaimed * 100)
	if amountCents > bill.TotalAmount {
		return nil, apperror.NewBadRequestError("Claimed amount exceeds the bill total")
	}

	claim := &entity.InsuranceClaim{
		BillID:        input.BillID,
		ClaimNumber:   input.ClaimNumber,
		Provider:      input.Provider,
		AmountClaimed: amountCents,
		Status:        enum.ClaimStatusSubmitted,
	}

	if err := s.billRepo.AttachClaim(ctx, claim); err != nil {
		return nil, err
	}

	return s.billRepo.GetByID(ctx, input.BillID)
}

// UpdateClaimStatus moves a bill's insurance claim to a new status
func (s *BillingService) UpdateClaimStatus(ctx context.Context, billID uuid.UUID, status string) (*entity.Bill, error) {
	claimStatus := enum.ClaimStatus(status)
	if !claimStatus.IsValid() {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Invalid claim status: %s", status))
	}

	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	if bill.InsuranceClaim == nil {
		return nil, apperror.NewNotFoundError("Insurance claim")
	}

	if err := s.billRepo.UpdateClaimStatus(ctx, billID, claimStatus); err != nil {
		return nil, err
	}

	return s.billRepo.GetByID(ctx, billID)
}

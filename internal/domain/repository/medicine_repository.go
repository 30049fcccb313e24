package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/pkg/pagination"
)

// MedicineFilterParams contains filtering parameters for medicine queries
type MedicineFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	LowStock   bool
	SortBy     string
	SortOrder  string
}

// MedicineRepository defines the interface for pharmacy inventory operations
type MedicineRepository interface {
	Create(ctx context.Context, medicine *entity.Medicine) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error)
	GetByCode(ctx context.Context, code string) (*entity.Medicine, error)
	Update(ctx context.Context, medicine *entity.Medicine) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *MedicineFilterParams) ([]entity.Medicine, int64, error)
	// GetLowStock returns medicines at or below their reorder level
	GetLowStock(ctx context.Context) ([]entity.Medicine, error)
	// GetExpiring returns medicines whose expiry date falls after now and
	// on or before the cutoff. Already-expired medicines are excluded.
	GetExpiring(ctx context.Context, now, cutoff time.Time) ([]entity.Medicine, error)

	// AddStock atomically increments the stock quantity, optionally
	// recording a new batch number and expiry date (last write wins)
	AddStock(ctx context.Context, id uuid.UUID, quantity int, batchNumber *string, expiryDate *time.Time) error
	// ReduceStock atomically decrements the stock quantity, clamping at
	// zero rather than failing on over-reduction
	ReduceStock(ctx context.Context, id uuid.UUID, quantity int) error
	// SetStock overwrites the stock quantity
	SetStock(ctx context.Context, id uuid.UUID, quantity int) error
}

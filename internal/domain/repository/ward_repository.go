package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/internal/domain/enum"
	"github.com/kibettheo/medicore-api/pkg/pagination"
)

// WardFilterParams contains filtering parameters for ward queries
type WardFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Type       *enum.WardType
	Department string
	Floor      *int
}

// WardRepository defines the interface for ward and bed data operations
type WardRepository interface {
	// Create persists a ward together with its bed rows
	Create(ctx context.Context, ward *entity.Ward) error
	// GetByID retrieves a ward with its beds preloaded
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Ward, error)
	Update(ctx context.Context, ward *entity.Ward) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *WardFilterParams) ([]entity.Ward, int64, error)

	// GetBedByNumber retrieves a single bed by its number within a ward.
	// Returns (nil, nil) when no such bed exists.
	GetBedByNumber(ctx context.Context, wardID uuid.UUID, bedNumber int) (*entity.Bed, error)

	// ClaimFirstFreeBed atomically claims the lowest-numbered free bed in
	// the ward for the given patient. The claim runs under a row lock so
	// two concurrent admissions can never be assigned the same bed.
	// Returns (nil, nil) when the ward has no free bed.
	ClaimFirstFreeBed(ctx context.Context, wardID, patientID uuid.UUID, admission time.Time, expectedDischarge *time.Time) (*entity.Bed, error)

	// FreeBed releases an occupied bed, clearing its patient reference.
	// Returns false when the bed was already free (conditional update,
	// no rows affected).
	FreeBed(ctx context.Context, bedID uuid.UUID) (bool, error)

	// CountOccupied returns the number of occupied beds in a ward
	CountOccupied(ctx context.Context, wardID uuid.UUID) (int64, error)
}

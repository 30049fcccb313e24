package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/pkg/pagination"
)

// DoctorFilterParams contains filtering parameters for doctor queries
type DoctorFilterParams struct {
	Pagination     *pagination.PaginationParams
	Search         string
	Specialization string
	Department     string
}

// DoctorRepository defines the interface for doctor data operations
type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	Update(ctx context.Context, doctor *entity.Doctor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *DoctorFilterParams) ([]entity.Doctor, int64, error)
}

// StaffRepository defines the interface for staff data operations
type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error)
	Update(ctx context.Context, staff *entity.Staff) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search, department string) ([]entity.Staff, int64, error)
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/pkg/pagination"
)

// PatientFilterParams contains filtering parameters for patient queries
type PatientFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Gender     string
	BloodGroup string
	SortBy     string
	SortOrder  string
}

// PatientRepository defines the interface for patient data operations
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	GetByPatientNo(ctx context.Context, patientNo string) (*entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PatientFilterParams) ([]entity.Patient, int64, error)
	// IsAdmitted reports whether the patient currently occupies a bed
	IsAdmitted(ctx context.Context, id uuid.UUID) (bool, error)
}

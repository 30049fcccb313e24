package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/internal/domain/enum"
	"github.com/kibettheo/medicore-api/pkg/pagination"
)

// AppointmentFilterParams contains filtering parameters for appointment queries
type AppointmentFilterParams struct {
	Pagination *pagination.PaginationParams
	PatientID  *uuid.UUID
	DoctorID   *uuid.UUID
	Status     *enum.AppointmentStatus
	StartDate  *time.Time
	EndDate    *time.Time
}

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *AppointmentFilterParams) ([]entity.Appointment, int64, error)
	// ExistsForSlot reports whether the doctor already has a non-cancelled
	// appointment on the given date and time slot
	ExistsForSlot(ctx context.Context, doctorID uuid.UUID, date time.Time, timeSlot string) (bool, error)
}

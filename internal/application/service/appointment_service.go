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
)

// AppointmentService handles appointment scheduling operations
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
	}
}

// CreateAppointmentInput represents the create appointment input
type CreateAppointmentInput struct {
	PatientID uuid.UUID
	DoctorID  uuid.UUID
	Date      time.Time
	TimeSlot  string
	Reason    *string
}

// CreateAppointment schedules an appointment. A doctor cannot hold two
// live appointments in the same slot.
func (s *AppointmentService) CreateAppointment(ctx context.Context, input *CreateAppointmentInput) (*entity.Appointment, error) {
	patient, err := s.patientRepo.GetByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	doctor, err := s.doctorRepo.GetByID(ctx, input.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NewNotFoundError("Doctor")
	}

	taken, err := s.appointmentRepo.ExistsForSlot(ctx, input.DoctorID, input.Date, input.TimeSlot)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("%s is already booked for %s", doctor.FullName(), input.TimeSlot))
	}

	appointment := &entity.Appointment{
		PatientID: input.PatientID,
		DoctorID:  input.DoctorID,
		Date:      input.Date,
		TimeSlot:  input.TimeSlot,
		Reason:    input.Reason,
		Status:    enum.AppointmentStatusScheduled,
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	return s.appointmentRepo.GetByID(ctx, appointment.ID)
}

// GetAppointment retrieves an appointment by ID
func (s *AppointmentService) GetAppointment(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	return appointment, nil
}

// ListAppointments lists appointments with filtering
func (s *AppointmentService) ListAppointments(ctx context.Context, params *repository.AppointmentFilterParams) (*pagination.PaginatedResult[entity.Appointment], error) {
	appointments, total, err := s.appointmentRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(appointments, pag), nil
}

// UpdateAppointmentStatus moves an appointment through its lifecycle.
// Completed and cancelled appointments are terminal.
func (s *AppointmentService) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status enum.AppointmentStatus, notes *string) (*entity.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}

	if !appointment.Status.CanTransitionTo(status) {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Cannot move appointment from %s to %s", appointment.Status, status))
	}

	appointment.Status = status
	if notes != nil {
		appointment.Notes = notes
	}

	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}

// RescheduleAppointment moves an appointment to a new date and slot. Only
// non-terminal appointments can be rescheduled.
func (s *AppointmentService) RescheduleAppointment(ctx context.Context, id uuid.UUID, date time.Time, timeSlot string) (*entity.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}

	if appointment.Status.IsTerminal() {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Cannot reschedule a %s appointment", appointment.Status))
	}

	taken, err := s.appointmentRepo.ExistsForSlot(ctx, appointment.DoctorID, date, timeSlot)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.NewConflictError("The doctor is already booked for that slot")
	}

	appointment.Date = date
	appointment.TimeSlot = timeSlot

	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}

// DeleteAppointment removes an appointment
func (s *AppointmentService) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return apperror.NewNotFoundError("Appointment")
	}

	return s.appointmentRepo.Delete(ctx, id)
}

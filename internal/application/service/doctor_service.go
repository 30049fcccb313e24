package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/internal/domain/repository"
	"github.com/kibettheo/medicore-api/pkg/apperror"
	"github.com/kibettheo/medicore-api/pkg/pagination"
)

// DoctorService handles doctor registry operations
type DoctorService struct {
	doctorRepo repository.DoctorRepository
}

// NewDoctorService creates a new doctor service
func NewDoctorService(doctorRepo repository.DoctorRepository) *DoctorService {
	return &DoctorService{doctorRepo: doctorRepo}
}

// CreateDoctorInput represents the create doctor input
type CreateDoctorInput struct {
	LinkedUserID    *uuid.UUID
	FirstName       string
	LastName        string
	Specialization  string
	Department      string
	Qualification   *string
	Phone           *string
	Email           *string
	ConsultationFee float64
}

// CreateDoctor registers a new doctor
func (s *DoctorService) CreateDoctor(ctx context.Context, input *CreateDoctorInput) (*entity.Doctor, error) {
	if input.ConsultationFee < 0 {
		return nil, apperror.NewBadRequestError("Consultation fee cannot be negative")
	}

	doctor := &entity.Doctor{
		LinkedUserID:    input.LinkedUserID,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Specialization:  input.Specialization,
		Department:      input.Department,
		Qualification:   input.Qualification,
		Phone:           input.Phone,
		Email:           input.Email,
		ConsultationFee: int64(input.ConsultationFee * 100),
	}

	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		return nil, err
	}

	return doctor, nil
}

// GetDoctor retrieves a doctor by ID
func (s *DoctorService) GetDoctor(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NewNotFoundError("Doctor")
	}
	return doctor, nil
}

// ListDoctors lists doctors with filtering
func (s *DoctorService) ListDoctors(ctx context.Context, params *repository.DoctorFilterParams) (*pagination.PaginatedResult[entity.Doctor], error) {
	doctors, total, err := s.doctorRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(doctors, pag), nil
}

// UpdateDoctorInput represents the update doctor input
type UpdateDoctorInput struct {
	FirstName       *string
	LastName        *string
	Specialization  *string
	Department      *string
	Qualification   *string
	Phone           *string
	Email           *string
	ConsultationFee *float64
}

// UpdateDoctor updates a doctor's details
func (s *DoctorService) UpdateDoctor(ctx context.Context, id uuid.UUID, input *UpdateDoctorInput) (*entity.Doctor, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NewNotFoundError("Doctor")
	}

	if input.FirstName != nil {
		doctor.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		doctor.LastName = *input.LastName
	}
	if input.Specialization != nil {
		doctor.Specialization = *input.Specialization
	}
	if input.Department != nil {
		doctor.Department = *input.Department
	}
	if input.Qualification != nil {
		doctor.Qualification = input.Qualification
	}
	if input.Phone != nil {
		doctor.Phone = input.Phone
	}
	if input.Email != nil {
		doctor.Email = input.Email
	}
	if input.ConsultationFee != nil {
		if *input.ConsultationFee < 0 {
			return nil, apperror.NewBadRequestError("Consultation fee cannot be negative")
		}
		doctor.ConsultationFee = int64(*input.ConsultationFee * 100)
	}

	if err := s.doctorRepo.Update(ctx, doctor); err != nil {
		return nil, err
	}

	return doctor, nil
}

// DeleteDoctor removes a doctor
func (s *DoctorService) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doctor == nil {
		return apperror.NewNotFoundError("Doctor")
	}

	return s.doctorRepo.Delete(ctx, id)
}

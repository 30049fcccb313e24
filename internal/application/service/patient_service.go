package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/internal/domain/repository"
	"github.com/kibettheo/medicore-api/pkg/apperror"
	"github.com/kibettheo/medicore-api/pkg/pagination"
	"github.com/kibettheo/medicore-api/pkg/utils"
)

// PatientService handles patient registry operations
type PatientService struct {
	patientRepo repository.PatientRepository
	userRepo    repository.UserRepository
}

// NewPatientService creates a new patient service
func NewPatientService(patientRepo repository.PatientRepository, userRepo repository.UserRepository) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
		userRepo:    userRepo,
	}
}

// CreatePatientInput represents the create patient input
type CreatePatientInput struct {
	LinkedUserID     *uuid.UUID
	FirstName        string
	LastName         string
	Gender           string
	DateOfBirth      *time.Time
	BloodGroup       *string
	Phone            *string
	Email            *string
	Address          *string
	EmergencyContact *string
	EmergencyPhone   *string
	MedicalHistory   *string
}

// CreatePatient registers a new patient
func (s *PatientService) CreatePatient(ctx context.Context, input *CreatePatientInput) (*entity.Patient, error) {
	if input.LinkedUserID != nil {
		user, err := s.userRepo.GetByID(ctx, *input.LinkedUserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, apperror.NewBadRequestError("Linked user account does not exist")
		}
	}

	patient := &entity.Patient{
		LinkedUserID:     input.LinkedUserID,
		PatientNo:        utils.GeneratePatientNo(),
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Gender:           input.Gender,
		DateOfBirth:      input.DateOfBirth,
		BloodGroup:       input.BloodGroup,
		Phone:            input.Phone,
		Email:            input.Email,
		Address:          input.Address,
		EmergencyContact: input.EmergencyContact,
		EmergencyPhone:   input.EmergencyPhone,
		MedicalHistory:   input.MedicalHistory,
	}

	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

// GetPatient retrieves a patient by ID
func (s *PatientService) GetPatient(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}
	return patient, nil
}

// ListPatients lists patients with filtering
func (s *PatientService) ListPatients(ctx context.Context, params *repository.PatientFilterParams) (*pagination.PaginatedResult[entity.Patient], error) {
	patients, total, err := s.patientRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(patients, pag), nil
}

// UpdatePatientInput represents the update patient input
type UpdatePatientInput struct {
	LinkedUserID     *uuid.UUID
	FirstName        *string
	LastName         *string
	Gender           *string
	DateOfBirth      *time.Time
	BloodGroup       *string
	Phone            *string
	Email            *string
	Address          *string
	EmergencyContact *string
	EmergencyPhone   *string
	MedicalHistory   *string
}

// UpdatePatient updates a patient's details
func (s *PatientService) UpdatePatient(ctx context.Context, id uuid.UUID, input *UpdatePatientInput) (*entity.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	if input.LinkedUserID != nil {
		user, err := s.userRepo.GetByID(ctx, *input.LinkedUserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, apperror.NewBadRequestError("Linked user account does not exist")
		}
		patient.LinkedUserID = input.LinkedUserID
	}
	if input.FirstName != nil {
		patient.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		patient.LastName = *input.LastName
	}
	if input.Gender != nil {
		patient.Gender = *input.Gender
	}
	if input.DateOfBirth != nil {
		patient.DateOfBirth = input.DateOfBirth
	}
	if input.BloodGroup != nil {
		patient.BloodGroup = input.BloodGroup
	}
	if input.Phone != nil {
		patient.Phone = input.Phone
	}
	if input.Email != nil {
		patient.Email = input.Email
	}
	if input.Address != nil {
		patient.Address = input.Address
	}
	if input.EmergencyContact != nil {
		patient.EmergencyContact = input.EmergencyContact
	}
	if input.EmergencyPhone != nil {
		patient.EmergencyPhone = input.EmergencyPhone
	}
	if input.MedicalHistory != nil {
		patient.MedicalHistory = input.MedicalHistory
	}

	if err := s.patientRepo.Update(ctx, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

// DeletePatient removes a patient. Admitted patients must be discharged
// first.
func (s *PatientService) DeletePatient(ctx context.Context, id uuid.UUID) error {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if patient == nil {
		return apperror.NewNotFoundError("Patient")
	}

	admitted, err := s.patientRepo.IsAdmitted(ctx, id)
	if err != nil {
		return err
	}
	if admitted {
		return apperror.NewConflictError("Cannot delete a patient who is currently admitted")
	}

	return s.patientRepo.Delete(ctx, id)
}

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

// WardService handles ward and bed allocation operations
type WardService struct {
	wardRepo    repository.WardRepository
	patientRepo repository.PatientRepository
}

// NewWardService creates a new ward service
func NewWardService(wardRepo repository.WardRepository, patientRepo repository.PatientRepository) *WardService {
	return &WardService{
		wardRepo:    wardRepo,
		patientRepo: patientRepo,
	}
}

// CreateWardInput represents the create ward input
type CreateWardInput struct {
	Name              string
	Type              string
	Department        string
	Floor             int
	TotalBeds         int
	DailyRate         float64
	GenderRestriction string
}

// CreateWard creates a ward together with its numbered beds
func (s *WardService) CreateWard(ctx context.Context, input *CreateWardInput) (*entity.Ward, error) {
	if input.TotalBeds < 1 {
		return nil, apperror.NewBadRequestError("Ward must have at least one bed")
	}

	wardType := enum.WardType(input.Type)
	if input.Type != "" && !wardType.IsValid() {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Invalid ward type: %s", input.Type))
	}
	if input.Type == "" {
		wardType = enum.WardTypeGeneral
	}

	restriction := enum.GenderRestriction(input.GenderRestriction)
	if input.GenderRestriction != "" && !restriction.IsValid() {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Invalid gender restriction: %s", input.GenderRestriction))
	}
	if input.GenderRestriction == "" {
		restriction = enum.GenderRestrictionMixed
	}

	if input.DailyRate < 0 {
		return nil, apperror.NewBadRequestError("Daily rate cannot be negative")
	}

	ward := &entity.Ward{
		WardNo:            utils.GenerateWardNo(),
		Name:              input.Name,
		Type:              wardType,
		Department:        input.Department,
		Floor:             input.Floor,
		TotalBeds:         input.TotalBeds,
		DailyRate:         int64(input.DailyRate * 100),
		GenderRestriction: restriction,
	}

	// Beds are numbered 1..TotalBeds and created with the ward
	ward.Beds = make([]entity.Bed, input.TotalBeds)
	for i := 0; i < input.TotalBeds; i++ {
		ward.Beds[i] = entity.Bed{BedNumber: i + 1}
	}

	if err := s.wardRepo.Create(ctx, ward); err != nil {
		return nil, err
	}

	return s.wardRepo.GetByID(ctx, ward.ID)
}

// GetWard retrieves a ward with its beds
func (s *WardService) GetWard(ctx context.Context, id uuid.UUID) (*entity.Ward, error) {
	ward, err := s.wardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ward == nil {
		return nil, apperror.NewNotFoundError("Ward")
	}
	return ward, nil
}

// ListWards lists wards with filtering
func (s *WardService) ListWards(ctx context.Context, params *repository.WardFilterParams) (*pagination.PaginatedResult[entity.Ward], error) {
	wards, total, err := s.wardRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(wards, pag), nil
}

// UpdateWardInput represents the update ward input. Bed count is fixed at
// creation and cannot change here.
type UpdateWardInput struct {
	Name              *string
	Type              *string
	Department        *string
	Floor             *int
	DailyRate         *float64
	GenderRestriction *string
}

// UpdateWard updates ward attributes other than its bed count
func (s *WardService) UpdateWard(ctx context.Context, id uuid.UUID, input *UpdateWardInput) (*entity.Ward, error) {
	ward, err := s.wardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ward == nil {
		return nil, apperror.NewNotFoundError("Ward")
	}

	if input.Name != nil {
		ward.Name = *input.Name
	}
	if input.Type != nil {
		wardType := enum.WardType(*input.Type)
		if !wardType.IsValid() {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Invalid ward type: %s", *input.Type))
		}
		ward.Type = wardType
	}
	if input.Department != nil {
		ward.Department = *input.Department
	}
	if input.Floor != nil {
		ward.Floor = *input.Floor
	}
	if input.DailyRate != nil {
		if *input.DailyRate < 0 {
			return nil, apperror.NewBadRequestError("Daily rate cannot be negative")
		}
		ward.DailyRate = int64(*input.DailyRate * 100)
	}
	if input.GenderRestriction != nil {
		restriction := enum.GenderRestriction(*input.GenderRestriction)
		if !restriction.IsValid() {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Invalid gender restriction: %s", *input.GenderRestriction))
		}
		ward.GenderRestriction = restriction
	}

	if err := s.wardRepo.Update(ctx, ward); err != nil {
		return nil, err
	}

	return s.wardRepo.GetByID(ctx, id)
}

// DeleteWard deletes a ward. A ward with admitted patients cannot be deleted.
func (s *WardService) DeleteWard(ctx context.Context, id uuid.UUID) error {
	ward, err := s.wardRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ward == nil {
		return apperror.NewNotFoundError("Ward")
	}

	occupied, err := s.wardRepo.CountOccupied(ctx, id)
	if err != nil {
		return err
	}
	if occupied > 0 {
		return apperror.NewConflictError("Cannot delete a ward with occupied beds")
	}

	return s.wardRepo.Delete(ctx, id)
}

// AllocateBedInput represents a bed allocation request
type AllocateBedInput struct {
	WardID                uuid.UUID
	PatientID             uuid.UUID
	AdmissionDate         time.Time
	ExpectedDischargeDate *time.Time
}

// AllocateBed admits a patient into the lowest-numbered free bed of a ward.
// A full ward rejects the admission rather than queueing it. Allocation is
// not deduplicated per patient: a repeated admission takes another bed.
func (s *WardService) AllocateBed(ctx context.Context, input *AllocateBedInput) (*entity.Bed, error) {
	if input.AdmissionDate.IsZero() {
		return nil, apperror.NewBadRequestError("Admission date is required")
	}

	ward, err := s.wardRepo.GetByID(ctx, input.WardID)
	if err != nil {
		return nil, err
	}
	if ward == nil {
		return nil, apperror.NewNotFoundError("Ward")
	}

	patient, err := s.patientRepo.GetByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	if ward.GenderRestriction != enum.GenderRestrictionMixed &&
		patient.Gender != "" && patient.Gender != string(ward.GenderRestriction) {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Ward %s only admits %s patients", ward.WardNo, ward.GenderRestriction))
	}

	bed, err := s.wardRepo.ClaimFirstFreeBed(ctx, input.WardID, input.PatientID, input.AdmissionDate, input.ExpectedDischargeDate)
	if err != nil {
		return nil, err
	}
	if bed == nil {
		return nil, apperror.NewCapacityError(fmt.Sprintf("Ward %s has no available beds", ward.WardNo))
	}

	return bed, nil
}

// ReleaseBed discharges the patient occupying the given bed. Releasing a
// bed that is already free is a conflict, not a no-op.
func (s *WardService) ReleaseBed(ctx context.Context, wardID uuid.UUID, bedNumber int) (*entity.Bed, error) {
	ward, err := s.wardRepo.GetByID(ctx, wardID)
	if err != nil {
		return nil, err
	}
	if ward == nil {
		return nil, apperror.NewNotFoundError("Ward")
	}

	bed, err := s.wardRepo.GetBedByNumber(ctx, wardID, bedNumber)
	if err != nil {
		return nil, err
	}
	if bed == nil {
		return nil, apperror.NewNotFoundError("Bed")
	}

	freed, err := s.wardRepo.FreeBed(ctx, bed.ID)
	if err != nil {
		return nil, err
	}
	if !freed {
		return nil, apperror.NewConflictError(fmt.Sprintf("Bed %d is not occupied", bedNumber))
	}

	return s.wardRepo.GetBedByNumber(ctx, wardID, bedNumber)
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/internal/domain/repository"
	"github.com/kibettheo/medicore-api/pkg/apperror"
	"github.com/kibettheo/medicore-api/pkg/pagination"
)

// StaffService handles staff registry operations
type StaffService struct {
	staffRepo repository.StaffRepository
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo repository.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

// CreateStaffInput represents the create staff input
type CreateStaffInput struct {
	LinkedUserID *uuid.UUID
	FirstName    string
	LastName     string
	Designation  string
	Department   string
	Shift        *string
	Phone        *string
	Email        *string
	Salary       float64
	JoinedAt     *time.Time
}

// CreateStaff registers a new staff member
func (s *StaffService) CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.Staff, error) {
	if input.Salary < 0 {
		return nil, apperror.NewBadRequestError("Salary cannot be negative")
	}

	staff := &entity.Staff{
		LinkedUserID: input.LinkedUserID,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Designation:  input.Designation,
		Department:   input.Department,
		Shift:        input.Shift,
		Phone:        input.Phone,
		Email:        input.Email,
		Salary:       int64(input.Salary * 100),
		JoinedAt:     input.JoinedAt,
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// GetStaff retrieves a staff member by ID
func (s *StaffService) GetStaff(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff member")
	}
	return staff, nil
}

// ListStaff lists staff with filtering
func (s *StaffService) ListStaff(ctx context.Context, params *pagination.PaginationParams, search, department string) (*pagination.PaginatedResult[entity.Staff], error) {
	staff, total, err := s.staffRepo.List(ctx, params, search, department)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(staff, pag), nil
}

// UpdateStaffInput represents the update staff input
type UpdateStaffInput struct {
	FirstName   *string
	LastName    *string
	Designation *string
	Department  *string
	Shift       *string
	Phone       *string
	Email       *string
	Salary      *float64
}

// UpdateStaff updates a staff member's details
func (s *StaffService) UpdateStaff(ctx context.Context, id uuid.UUID, input *UpdateStaffInput) (*entity.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff member")
	}

	if input.FirstName != nil {
		staff.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		staff.LastName = *input.LastName
	}
	if input.Designation != nil {
		staff.Designation = *input.Designation
	}
	if input.Department != nil {
		staff.Department = *input.Department
	}
	if input.Shift != nil {
		staff.Shift = input.Shift
	}
	if input.Phone != nil {
		staff.Phone = input.Phone
	}
	if input.Email != nil {
		staff.Email = input.Email
	}
	if input.Salary != nil {
		if *input.Salary < 0 {
			return nil, apperror.NewBadRequestError("Salary cannot be negative")
		}
		staff.Salary = int64(*input.Salary * 100)
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// DeleteStaff removes a staff member
func (s *StaffService) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if staff == nil {
		return apperror.NewNotFoundError("Staff member")
	}

	return s.staffRepo.Delete(ctx, id)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/internal/domain/repository"
	"github.com/kibettheo/medicore-api/pkg/apperror"
	"github.com/kibettheo/medicore-api/pkg/pagination"
	"github.com/kibettheo/medicore-api/pkg/utils"
)

// PharmacyService handles pharmacy inventory operations
type PharmacyService struct {
	medicineRepo repository.MedicineRepository
}

// NewPharmacyService creates a new pharmacy service
func NewPharmacyService(medicineRepo repository.MedicineRepository) *PharmacyService {
	return &PharmacyService{medicineRepo: medicineRepo}
}

// CreateMedicineInput represents the create medicine input
type CreateMedicineInput struct {
	Code         string
	Name         string
	GenericName  *string
	Manufacturer *string
	Category     string
	StockQty     int
	ReorderLevel int
	UnitPrice    float64
	ExpiryDate   *time.Time
	BatchNumber  *string
}

// CreateMedicine registers a new medicine in the inventory
func (s *PharmacyService) CreateMedicine(ctx context.Context, input *CreateMedicineInput) (*entity.Medicine, error) {
	if input.StockQty < 0 {
		return nil, apperror.NewBadRequestError("Stock quantity cannot be negative")
	}
	if input.ReorderLevel < 0 {
		return nil, apperror.NewBadRequestError("Reorder level cannot be negative")
	}
	if input.UnitPrice < 0 {
		return nil, apperror.NewBadRequestError("Unit price cannot be negative")
	}

	code := input.Code
	if code == "" {
		code = utils.GenerateMedicineCode()
	}

	existing, err := s.medicineRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError(fmt.Sprintf("Medicine with code %s already exists", code))
	}

	medicine := &entity.Medicine{
		Code:         code,
		Name:         input.Name,
		GenericName:  input.GenericName,
		Manufacturer: input.Manufacturer,
		Category:     input.Category,
		StockQty:     input.StockQty,
		ReorderLevel: input.ReorderLevel,
		UnitPrice:    int64(input.UnitPrice * 100),
		ExpiryDate:   input.ExpiryDate,
		BatchNumber:  input.BatchNumber,
	}

	if err := s.medicineRepo.Create(ctx, medicine); err != nil {
		return nil, err
	}

	return medicine, nil
}

// GetMedicine retrieves a medicine by ID
func (s *PharmacyService) GetMedicine(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, apperror.NewNotFoundError("Medicine")
	}
	return medicine, nil
}

// ListMedicines lists medicines with filtering
func (s *PharmacyService) ListMedicines(ctx context.Context, params *repository.MedicineFilterParams) (*pagination.PaginatedResult[entity.Medicine], error) {
	medicines, total, err := s.medicineRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(medicines, pag), nil
}

// UpdateMedicineInput represents the update medicine input. Stock changes
// go through the stock operations, not here.
type UpdateMedicineInput struct {
	Name         *string
	GenericName  *string
	Manufacturer *string
	Category     *string
	ReorderLevel *int
	UnitPrice    *float64
	ExpiryDate   *time.Time
	BatchNumber  *string
}

// UpdateMedicine updates a medicine's descriptive attributes
func (s *PharmacyService) UpdateMedicine(ctx context.Context, id uuid.UUID, input *UpdateMedicineInput) (*entity.Medicine, error) {
	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, apperror.NewNotFoundError("Medicine")
	}

	if input.Name != nil {
		medicine.Name = *input.Name
	}
	if input.GenericName != nil {
		medicine.GenericName = input.GenericName
	}
	if input.Manufacturer != nil {
		medicine.Manufacturer = input.Manufacturer
	}
	if input.Category != nil {
		medicine.Category = *input.Category
	}
	if input.ReorderLevel != nil {
		if *input.ReorderLevel < 0 {
			return nil, apperror.NewBadRequestError("Reorder level cannot be negative")
		}
		medicine.ReorderLevel = *input.ReorderLevel
	}
	if input.UnitPrice != nil {
		if *input.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Unit price cannot be negative")
		}
		medicine.UnitPrice = int64(*input.UnitPrice * 100)
	}
	if input.ExpiryDate != nil {
		medicine.ExpiryDate = input.ExpiryDate
	}
	if input.BatchNumber != nil {
		medicine.BatchNumber = input.BatchNumber
	}

	if err := s.medicineRepo.Update(ctx, medicine); err != nil {
		return nil, err
	}

	return medicine, nil
}

// DeleteMedicine removes a medicine from the inventory
func (s *PharmacyService) DeleteMedicine(ctx context.Context, id uuid.UUID) error {
	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if medicine == nil {
		return apperror.NewNotFoundError("Medicine")
	}

	return s.medicineRepo.Delete(ctx, id)
}

// AddStockInput represents a stock intake
type AddStockInput struct {
	Quantity    int
	BatchNumber *string
	ExpiryDate  *time.Time
}

// AddStock receives new stock, optionally updating the batch and expiry
func (s *PharmacyService) AddStock(ctx context.Context, id uuid.UUID, input *AddStockInput) (*entity.Medicine, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}

	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, apperror.NewNotFoundError("Medicine")
	}

	if err := s.medicineRepo.AddStock(ctx, id, input.Quantity, input.BatchNumber, input.ExpiryDate); err != nil {
		return nil, err
	}

	return s.medicineRepo.GetByID(ctx, id)
}

// ReduceStock dispenses stock. Reducing below zero clamps at zero instead
// of failing, so dispensing the remainder of a batch never errors.
func (s *PharmacyService) ReduceStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.Medicine, error) {
	if quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}

	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, apperror.NewNotFoundError("Medicine")
	}

	if err := s.medicineRepo.ReduceStock(ctx, id, quantity); err != nil {
		return nil, err
	}

	return s.medicineRepo.GetByID(ctx, id)
}

// SetStock overwrites the stock quantity after a physical count
func (s *PharmacyService) SetStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.Medicine, error) {
	if quantity < 0 {
		return nil, apperror.NewBadRequestError("Stock quantity cannot be negative")
	}

	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, apperror.NewNotFoundError("Medicine")
	}

	if err := s.medicineRepo.SetStock(ctx, id, quantity); err != nil {
		return nil, err
	}

	return s.medicineRepo.GetByID(ctx, id)
}

// GetLowStock returns medicines at or below their reorder level
func (s *PharmacyService) GetLowStock(ctx context.Context) ([]entity.Medicine, error) {
	return s.medicineRepo.GetLowStock(ctx)
}

// GetExpiring returns medicines expiring within the given number of days
func (s *PharmacyService) GetExpiring(ctx context.Context, days int) ([]entity.Medicine, error) {
	if days <= 0 {
		days = 30
	}
	now := time.Now()
	return s.medicineRepo.GetExpiring(ctx, now, now.Add(time.Duration(days)*24*time.Hour))
}

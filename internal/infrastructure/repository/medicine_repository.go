package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/entity"
	domainRepo "github.com/kibettheo/medicore-api/internal/domain/repository"
	"gorm.io/gorm"
)

type medicineRepository struct {
	db *gorm.DB
}

// NewMedicineRepository creates a new medicine repository
func NewMedicineRepository(db *gorm.DB) domainRepo.MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	return r.db.WithContext(ctx).Create(medicine).Error
}

func (r *medicineRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := r.db.WithContext(ctx).First(&medicine, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &medicine, err
}

func (r *medicineRepository) GetByCode(ctx context.Context, code string) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := r.db.WithContext(ctx).First(&medicine, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &medicine, err
}

func (r *medicineRepository) Update(ctx context.Context, medicine *entity.Medicine) error {
	return r.db.WithContext(ctx).Save(medicine).Error
}

func (r *medicineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Medicine{}, "id = ?", id).Error
}

func (r *medicineRepository) List(ctx context.Context, params *domainRepo.MedicineFilterParams) ([]entity.Medicine, int64, error) {
	var medicines []entity.Medicine
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Medicine{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ? OR generic_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.LowStock {
		query = query.Where("stock_qty <= reorder_level")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder != "" && (params.SortOrder == "ASC" || params.SortOrder == "asc") {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&medicines).Error

	return medicines, total, err
}

func (r *medicineRepository) GetLowStock(ctx context.Context) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	err := r.db.WithContext(ctx).
		Where("stock_qty <= reorder_level").
		Order("stock_qty ASC").
		Find(&medicines).Error
	return medicines, err
}

func (r *medicineRepository) GetExpiring(ctx context.Context, now, cutoff time.Time) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	err := r.db.WithContext(ctx).
		Where("expiry_date IS NOT NULL AND expiry_date > ? AND expiry_date <= ?", now, cutoff).
		Order("expiry_date ASC").
		Find(&medicines).Error
	return medicines, err
}

func (r *medicineRepository) AddStock(ctx context.Context, id uuid.UUID, quantity int, batchNumber *string, expiryDate *time.Time) error {
	updates := map[string]interface{}{
		"stock_qty": gorm.Expr("stock_qty + ?", quantity),
	}
	if batchNumber != nil {
		updates["batch_number"] = *batchNumber
	}
	if expiryDate != nil {
		updates["expiry_date"] = *expiryDate
	}

	return r.db.WithContext(ctx).Model(&entity.Medicine{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// ReduceStock decrements the quantity, clamping at zero when the reduction
// exceeds what is on hand.
func (r *medicineRepository) ReduceStock(ctx context.Context, id uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).Model(&entity.Medicine{}).
		Where("id = ?", id).
		Update("stock_qty", gorm.Expr("GREATEST(stock_qty - ?, 0)", quantity)).Error
}

func (r *medicineRepository) SetStock(ctx context.Context, id uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).Model(&entity.Medicine{}).
		Where("id = ?", id).
		Update("stock_qty", quantity).Error
}

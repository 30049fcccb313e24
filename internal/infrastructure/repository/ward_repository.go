package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/entity"
	domainRepo "github.com/kibettheo/medicore-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type wardRepository struct {
	db *gorm.DB
}

// NewWardRepository creates a new ward repository
func NewWardRepository(db *gorm.DB) domainRepo.WardRepository {
	return &wardRepository{db: db}
}

func (r *wardRepository) Create(ctx context.Context, ward *entity.Ward) error {
	// Bed rows are created together with the ward via the association
	return r.db.WithContext(ctx).Create(ward).Error
}

func (r *wardRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ward, error) {
	var ward entity.Ward
	err := r.db.WithContext(ctx).
		Preload("Beds", func(db *gorm.DB) *gorm.DB {
			return db.Order("bed_number ASC")
		}).
		Preload("Beds.Patient").
		First(&ward, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ward, err
}

func (r *wardRepository) Update(ctx context.Context, ward *entity.Ward) error {
	return r.db.WithContext(ctx).Omit("Beds").Save(ward).Error
}

func (r *wardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Ward{}, "id = ?", id).Error
}

func (r *wardRepository) List(ctx context.Context, params *domainRepo.WardFilterParams) ([]entity.Ward, int64, error) {
	var wards []entity.Ward
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Ward{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR ward_no ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	if params.Department != "" {
		query = query.Where("department = ?", params.Department)
	}

	if params.Floor != nil {
		query = query.Where("floor = ?", *params.Floor)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Beds").
		Order("ward_no ASC").
		Find(&wards).Error

	return wards, total, err
}

func (r *wardRepository) GetBedByNumber(ctx context.Context, wardID uuid.UUID, bedNumber int) (*entity.Bed, error) {
	var bed entity.Bed
	err := r.db.WithContext(ctx).
		Where("ward_id = ? AND bed_number = ?", wardID, bedNumber).
		First(&bed).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bed, err
}

// ClaimFirstFreeBed locks the lowest-numbered free bed row and marks it
// occupied inside a single transaction. SELECT ... FOR UPDATE serializes
// concurrent admissions into the same ward, so each claim sees the bed
// state left by the previous one.
func (r *wardRepository) ClaimFirstFreeBed(ctx context.Context, wardID, patientID uuid.UUID, admission time.Time, expectedDischarge *time.Time) (*entity.Bed, error) {
	var bed entity.Bed

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("ward_id = ? AND is_occupied = ?", wardID, false).
			Order("bed_number ASC").
			First(&bed).Error
		if err != nil {
			return err
		}

		bed.IsOccupied = true
		bed.PatientID = &patientID
		bed.AdmissionDate = &admission
		bed.ExpectedDischargeDate = expectedDischarge

		return tx.Save(&bed).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Ward is at capacity
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bed, nil
}

// FreeBed clears the occupancy of a bed. The WHERE is_occupied guard makes
// a double release a no-op reported via the boolean.
func (r *wardRepository) FreeBed(ctx context.Context, bedID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.Bed{}).
		Where("id = ? AND is_occupied = ?", bedID, true).
		Updates(map[string]interface{}{
			"is_occupied":             false,
			"patient_id":              nil,
			"admission_date":          nil,
			"expected_discharge_date": nil,
		})

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *wardRepository) CountOccupied(ctx context.Context, wardID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Bed{}).
		Where("ward_id = ? AND is_occupied = ?", wardID, true).
		Count(&count).Error
	return count, err
}

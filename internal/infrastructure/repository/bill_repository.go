package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/internal/domain/enum"
	domainRepo "github.com/kibettheo/medicore-api/internal/domain/repository"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	// Items are persisted together with the bill via the association
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Items").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("paid_at ASC")
		}).
		Preload("InsuranceClaim").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Bill{}, "id = ?", id).Error
}

func (r *billRepository) List(ctx context.Context, params *domainRepo.BillFilterParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Bill{})

	if params.Search != "" {
		query = query.Where("bill_no ILIKE ?", "%"+params.Search+"%")
	}

	if params.PatientID != nil {
		query = query.Where("patient_id = ?", *params.PatientID)
	}

	if params.Status != nil {
		query = query.Where("payment_status = ?", *params.Status)
	}

	if params.StartDate != nil {
		query = query.Where("bill_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("bill_date <= ?", *params.EndDate)
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
		Preload("Patient").
		Order(sortBy + " " + sortOrder).
		Find(&bills).Error

	return bills, total, err
}

// AppendPayment moves the paid/balance counters with a conditional update
// and inserts the payment row in the same transaction. The balance guard
// makes the whole operation a no-op when the payment would overdraw the
// bill, including under concurrent payments racing on the same balance.
func (r *billRepository) AppendPayment(ctx context.Context, billID uuid.UUID, payment *entity.BillPayment) (bool, error) {
	accepted := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Bill{}).
			Where("id = ? AND balance >= ?", billID, payment.Amount).
			Updates(map[string]interface{}{
				"amount_paid": gorm.Expr("amount_paid + ?", payment.Amount),
				"balance":     gorm.Expr("balance - ?", payment.Amount),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		payment.BillID = billID
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		// Rederive the payment status from the counters we just moved
		var bill entity.Bill
		if err := tx.Select("amount_paid", "total_amount").
			First(&bill, "id = ?", billID).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.Bill{}).
			Where("id = ?", billID).
			Update("payment_status", enum.PaymentStatusFor(bill.AmountPaid, bill.TotalAmount)).Error; err != nil {
			return err
		}

		accepted = true
		return nil
	})

	return accepted, err
}

func (r *billRepository) AttachClaim(ctx context.Context, claim *entity.InsuranceClaim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

func (r *billRepository) UpdateClaimStatus(ctx context.Context, billID uuid.UUID, status enum.ClaimStatus) error {
	return r.db.WithContext(ctx).Model(&entity.InsuranceClaim{}).
		Where("bill_id = ?", billID).
		Update("status", status).Error
}

func (r *billRepository) OutstandingBalance(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&total).Error
	return total, err
}

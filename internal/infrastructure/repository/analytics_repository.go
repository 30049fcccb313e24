package repository

import (
	"context"
	"time"

	"github.com/kibettheo/medicore-api/internal/domain/entity"
	domainRepo "github.com/kibettheo/medicore-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetDashboardStats(ctx context.Context, now time.Time) (*domainRepo.DashboardStats, error) {
	stats := &domainRepo.DashboardStats{}
	db := r.db.WithContext(ctx)

	if err := db.Model(&entity.Patient{}).Count(&stats.TotalPatients).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&entity.Doctor{}).Count(&stats.TotalDoctors).Error; err != nil {
		return nil, err
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	if err := db.Model(&entity.Appointment{}).
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Count(&stats.TodaysAppointments).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&entity.Bed{}).Count(&stats.TotalBeds).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.Bed{}).
		Where("is_occupied = ?", true).
		Count(&stats.OccupiedBeds).Error; err != nil {
		return nil, err
	}
	stats.AvailableBeds = stats.TotalBeds - stats.OccupiedBeds

	if err := db.Model(&entity.Bill{}).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&stats.OutstandingBalance).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&entity.Medicine{}).
		Where("stock_qty <= reorder_level").
		Count(&stats.LowStockMedicines).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&entity.Medicine{}).
		Where("expiry_date IS NOT NULL AND expiry_date <= ?", now.Add(30*24*time.Hour)).
		Count(&stats.ExpiringMedicines).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

package service

import (
	"context"
	"time"

	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/internal/domain/repository"
)

// DashboardService aggregates dashboard data
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	medicineRepo  repository.MedicineRepository
	billRepo      repository.BillRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analyticsRepo repository.AnalyticsRepository,
	medicineRepo repository.MedicineRepository,
	billRepo repository.BillRepository,
) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		medicineRepo:  medicineRepo,
		billRepo:      billRepo,
	}
}

// GetStats returns the headline dashboard numbers
func (s *DashboardService) GetStats(ctx context.Context) (*repository.DashboardStats, error) {
	return s.analyticsRepo.GetDashboardStats(ctx, time.Now())
}

// GetStockAlerts returns medicines needing attention: at or below reorder
// level, or expiring within 30 days
func (s *DashboardService) GetStockAlerts(ctx context.Context) ([]entity.Medicine, error) {
	lowStock, err := s.medicineRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expiring, err := s.medicineRepo.GetExpiring(ctx, now, now.Add(30*24*time.Hour))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(lowStock))
	alerts := make([]entity.Medicine, 0, len(lowStock)+len(expiring))
	for _, m := range lowStock {
		seen[m.ID.String()] = true
		alerts = append(alerts, m)
	}
	for _, m := range expiring {
		if !seen[m.ID.String()] {
			alerts = append(alerts, m)
		}
	}

	return alerts, nil
}

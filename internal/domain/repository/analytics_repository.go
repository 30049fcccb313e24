package repository

import (
	"context"
	"time"
)

// DashboardStats aggregates the headline numbers shown on the dashboard
type DashboardStats struct {
	TotalPatients       int64 `json:"total_patients"`
	TotalDoctors        int64 `json:"total_doctors"`
	TodaysAppointments  int64 `json:"todays_appointments"`
	TotalBeds           int64 `json:"total_beds"`
	OccupiedBeds        int64 `json:"occupied_beds"`
	AvailableBeds       int64 `json:"available_beds"`
	OutstandingBalance  int64 `json:"outstanding_balance"`
	LowStockMedicines   int64 `json:"low_stock_medicines"`
	ExpiringMedicines   int64 `json:"expiring_medicines"`
}

// AnalyticsRepository defines the interface for dashboard analytics
type AnalyticsRepository interface {
	GetDashboardStats(ctx context.Context, now time.Time) (*DashboardStats, error)
}

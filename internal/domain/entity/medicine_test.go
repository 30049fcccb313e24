package entity

import (
	"testing"
	"time"

	"github.com/kibettheo/medicore-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestMedicineStockStatus(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	soon := now.Add(10 * 24 * time.Hour)
	farOff := now.Add(200 * 24 * time.Hour)

	tests := []struct {
		name     string
		medicine Medicine
		want     enum.StockStatus
	}{
		{
			name:     "expired beats full stock",
			medicine: Medicine{StockQty: 500, ReorderLevel: 20, ExpiryDate: &past},
			want:     enum.StockStatusExpired,
		},
		{
			name:     "expired beats out of stock",
			medicine: Medicine{StockQty: 0, ReorderLevel: 20, ExpiryDate: &past},
			want:     enum.StockStatusExpired,
		},
		{
			name:     "out of stock beats expiring soon",
			medicine: Medicine{StockQty: 0, ReorderLevel: 20, ExpiryDate: &soon},
			want:     enum.StockStatusOutOfStock,
		},
		{
			name:     "critical at 30 percent of reorder level",
			medicine: Medicine{StockQty: 6, ReorderLevel: 20},
			want:     enum.StockStatusCritical,
		},
		{
			name:     "critical beats expiring soon",
			medicine: Medicine{StockQty: 5, ReorderLevel: 20, ExpiryDate: &soon},
			want:     enum.StockStatusCritical,
		},
		{
			name:     "expiring soon beats low stock",
			medicine: Medicine{StockQty: 15, ReorderLevel: 20, ExpiryDate: &soon},
			want:     enum.StockStatusExpiring,
		},
		{
			name:     "low stock at reorder level",
			medicine: Medicine{StockQty: 20, ReorderLevel: 20},
			want:     enum.StockStatusLowStock,
		},
		{
			name:     "low stock just above critical",
			medicine: Medicine{StockQty: 7, ReorderLevel: 20},
			want:     enum.StockStatusLowStock,
		},
		{
			name:     "in stock above reorder level",
			medicine: Medicine{StockQty: 21, ReorderLevel: 20},
			want:     enum.StockStatusInStock,
		},
		{
			name:     "distant expiry does not mask in stock",
			medicine: Medicine{StockQty: 100, ReorderLevel: 20, ExpiryDate: &farOff},
			want:     enum.StockStatusInStock,
		},
		{
			name:     "no expiry date set",
			medicine: Medicine{StockQty: 100, ReorderLevel: 20},
			want:     enum.StockStatusInStock,
		},
		{
			name:     "zero reorder level with stock",
			medicine: Medicine{StockQty: 1, ReorderLevel: 0},
			want:     enum.StockStatusInStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.medicine.StockStatus(now))
		})
	}
}

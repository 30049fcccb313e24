package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Medicine represents a pharmacy inventory item
type Medicine struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code         string         `gorm:"size:100;unique;not null" json:"code"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	GenericName  *string        `gorm:"size:255" json:"generic_name,omitempty"`
	Manufacturer *string        `gorm:"size:255" json:"manufacturer,omitempty"`
	Category     string         `gorm:"size:100" json:"category"`
	StockQty     int            `gorm:"default:0" json:"stock_quantity"`
	ReorderLevel int            `gorm:"default:0" json:"reorder_level"`
	UnitPrice    int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	ExpiryDate   *time.Time     `gorm:"type:date" json:"expiry_date,omitempty"`
	BatchNumber  *string        `gorm:"size:100" json:"batch_number,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// expiringSoonWindow is how close to expiry a medicine must be before it is
// reported as Expiring Soon.
const expiringSoonWindow = 30 * 24 * time.Hour

// StockStatus derives the inventory status at the given instant. The
// precedence is fixed: expiry beats stock level, zero stock beats the
// threshold checks, and the critical threshold (30% of reorder level)
// beats the plain low-stock check.
func (m *Medicine) StockStatus(now time.Time) enum.StockStatus {
	if m.ExpiryDate != nil && m.ExpiryDate.Before(now) {
		return enum.StockStatusExpired
	}
	if m.StockQty == 0 {
		return enum.StockStatusOutOfStock
	}
	if float64(m.StockQty) <= float64(m.ReorderLevel)*0.3 {
		return enum.StockStatusCritical
	}
	if m.ExpiryDate != nil {
		untilExpiry := m.ExpiryDate.Sub(now)
		if untilExpiry > 0 && untilExpiry <= expiringSoonWindow {
			return enum.StockStatusExpiring
		}
	}
	if m.StockQty <= m.ReorderLevel {
		return enum.StockStatusLowStock
	}
	return enum.StockStatusInStock
}

// MarshalJSON custom marshaler to convert cents to decimal and attach the
// derived stock status for API responses
func (m Medicine) MarshalJSON() ([]byte, error) {
	type Alias Medicine
	return json.Marshal(&struct {
		Alias
		UnitPrice   float64          `json:"unit_price"`
		StockStatus enum.StockStatus `json:"stock_status"`
	}{
		Alias:       Alias(m),
		UnitPrice:   float64(m.UnitPrice) / 100,
		StockStatus: m.StockStatus(time.Now()),
	})
}

// BeforeCreate generates a UUID before creating a new medicine
func (m *Medicine) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Medicine model
func (Medicine) TableName() string {
	return "medicines"
}

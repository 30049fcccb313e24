package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Bill represents a billable record of services rendered to a patient.
// Line items are fixed at creation; payments only ever append. The derived
// fields (Subtotal, TotalAmount, AmountPaid, Balance, PaymentStatus) are
// kept consistent by the billing service and repository:
//
//	subtotal     = sum(quantity * unit_price)
//	total_amount = subtotal - discount + tax
//	amount_paid  = sum(payments.amount)
//	balance      = total_amount - amount_paid  (never negative)
type Bill struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	BillNo        string             `gorm:"size:100;unique;not null" json:"bill_no"`
	PatientID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"patient_id"`
	BillDate      time.Time          `gorm:"type:date;not null" json:"bill_date"`
	Subtotal      int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Discount      int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Tax           int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	TotalAmount   int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	AmountPaid    int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Balance       int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	PaymentStatus enum.PaymentStatus `gorm:"default:0" json:"payment_status"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Patient        *Patient        `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Items          []BillItem      `gorm:"foreignKey:BillID" json:"items,omitempty"`
	Payments       []BillPayment   `gorm:"foreignKey:BillID" json:"payments,omitempty"`
	InsuranceClaim *InsuranceClaim `gorm:"foreignKey:BillID" json:"insurance_claim,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	return json.Marshal(&struct {
		Alias
		Subtotal    float64 `json:"subtotal"`
		Discount    float64 `json:"discount"`
		Tax         float64 `json:"tax"`
		TotalAmount float64 `json:"total_amount"`
		AmountPaid  float64 `json:"amount_paid"`
		Balance     float64 `json:"balance"`
	}{
		Alias:       Alias(b),
		Subtotal:    float64(b.Subtotal) / 100,
		Discount:    float64(b.Discount) / 100,
		Tax:         float64(b.Tax) / 100,
		TotalAmount: float64(b.TotalAmount) / 100,
		AmountPaid:  float64(b.AmountPaid) / 100,
		Balance:     float64(b.Balance) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// RecomputeTotals recalculates subtotal and total from the loaded items and
// the bill's discount/tax, then rederives balance and payment status from
// the current amount paid.
func (b *Bill) RecomputeTotals() {
	var subtotal int64
	for _, item := range b.Items {
		subtotal += item.Total
	}
	b.Subtotal = subtotal
	b.TotalAmount = subtotal - b.Discount + b.Tax
	b.Balance = b.TotalAmount - b.AmountPaid
	b.PaymentStatus = enum.PaymentStatusFor(b.AmountPaid, b.TotalAmount)
}

// BillItem represents a line item on a bill
type BillItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BillID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"bill_id"`
	Description string         `gorm:"size:255;not null" json:"description"`
	Category    string         `gorm:"size:100" json:"category"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitPrice   int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Total       int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Bill Bill `gorm:"foreignKey:BillID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (bi BillItem) MarshalJSON() ([]byte, error) {
	type Alias BillItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(bi),
		UnitPrice: float64(bi.UnitPrice) / 100,
		Total:     float64(bi.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill item
func (bi *BillItem) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}

// BillPayment represents a single payment recorded against a bill.
// Payment rows are append only.
type BillPayment struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	BillID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"bill_id"`
	Amount        int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Method        enum.PaymentMethod `gorm:"size:50;not null" json:"method"`
	TransactionID *string            `gorm:"size:255" json:"transaction_id,omitempty"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	PaidAt        time.Time          `gorm:"not null" json:"paid_at"`
	CreatedAt     time.Time          `json:"created_at"`

	// Relationships
	Bill Bill `gorm:"foreignKey:BillID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p BillPayment) MarshalJSON() ([]byte, error) {
	type Alias BillPayment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new payment
func (p *BillPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillPayment model
func (BillPayment) TableName() string {
	return "bill_payments"
}

// InsuranceClaim holds claim metadata attached to a bill. At most one claim
// per bill; attaching a claim never changes the bill's paid amounts.
type InsuranceClaim struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	BillID        uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex" json:"bill_id"`
	ClaimNumber   string           `gorm:"size:100;not null" json:"claim_number"`
	Provider      string           `gorm:"size:255;not null" json:"provider"`
	AmountClaimed int64            `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Status        enum.ClaimStatus `gorm:"size:50;default:'Submitted'" json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`

	// Relationships
	Bill Bill `gorm:"foreignKey:BillID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (c InsuranceClaim) MarshalJSON() ([]byte, error) {
	type Alias InsuranceClaim
	return json.Marshal(&struct {
		Alias
		AmountClaimed float64 `json:"amount_claimed"`
	}{
		Alias:         Alias(c),
		AmountClaimed: float64(c.AmountClaimed) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new insurance claim
func (c *InsuranceClaim) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InsuranceClaim model
func (InsuranceClaim) TableName() string {
	return "insurance_claims"
}

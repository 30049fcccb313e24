package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff represents a non-doctor hospital employee
type Staff struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	LinkedUserID *uuid.UUID     `gorm:"type:uuid;index" json:"linked_user_id,omitempty"`
	FirstName    string         `gorm:"size:255;not null" json:"first_name"`
	LastName     string         `gorm:"size:255;not null" json:"last_name"`
	Designation  string         `gorm:"size:255;not null" json:"designation"`
	Department   string         `gorm:"size:255" json:"department"`
	Shift        *string        `gorm:"size:50" json:"shift,omitempty"`
	Phone        *string        `gorm:"size:50" json:"phone,omitempty"`
	Email        *string        `gorm:"size:255" json:"email,omitempty"`
	Salary       int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	JoinedAt     *time.Time     `gorm:"type:date" json:"joined_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	LinkedUser *User `gorm:"foreignKey:LinkedUserID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Staff) MarshalJSON() ([]byte, error) {
	type Alias Staff
	return json.Marshal(&struct {
		Alias
		Salary float64 `json:"salary"`
	}{
		Alias:  Alias(s),
		Salary: float64(s.Salary) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new staff member
func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Staff model
func (Staff) TableName() string {
	return "staff"
}

package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Doctor represents a practicing doctor
type Doctor struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	LinkedUserID    *uuid.UUID     `gorm:"type:uuid;index" json:"linked_user_id,omitempty"`
	FirstName       string         `gorm:"size:255;not null" json:"first_name"`
	LastName        string         `gorm:"size:255;not null" json:"last_name"`
	Specialization  string         `gorm:"size:255;not null" json:"specialization"`
	Department      string         `gorm:"size:255" json:"department"`
	Qualification   *string        `gorm:"size:255" json:"qualification,omitempty"`
	Phone           *string        `gorm:"size:50" json:"phone,omitempty"`
	Email           *string        `gorm:"size:255" json:"email,omitempty"`
	ConsultationFee int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	LinkedUser   *User         `gorm:"foreignKey:LinkedUserID" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (d Doctor) MarshalJSON() ([]byte, error) {
	type Alias Doctor
	return json.Marshal(&struct {
		Alias
		ConsultationFee float64 `json:"consultation_fee"`
	}{
		Alias:           Alias(d),
		ConsultationFee: float64(d.ConsultationFee) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new doctor
func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Doctor model
func (Doctor) TableName() string {
	return "doctors"
}

// FullName returns the doctor's display name
func (d *Doctor) FullName() string {
	return "Dr. " + d.FirstName + " " + d.LastName
}

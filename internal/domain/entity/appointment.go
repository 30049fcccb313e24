package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Appointment represents a scheduled consultation between a patient and a
// doctor
type Appointment struct {
	ID        uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	PatientID uuid.UUID              `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID  uuid.UUID              `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Date      time.Time              `gorm:"not null" json:"date"`
	TimeSlot  string                 `gorm:"size:50" json:"time_slot"`
	Reason    *string                `gorm:"type:text" json:"reason,omitempty"`
	Status    enum.AppointmentStatus `gorm:"default:0" json:"status"`
	Notes     *string                `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
	DeletedAt gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// BeforeCreate generates a UUID before creating a new appointment
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

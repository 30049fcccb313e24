package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient represents a registered patient. Every patient must carry a
// resolvable link to a login account; billing refuses to create bills for
// patients whose user link is missing.
type Patient struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	LinkedUserID     *uuid.UUID     `gorm:"type:uuid;index" json:"linked_user_id,omitempty"`
	PatientNo        string         `gorm:"size:100;unique;not null" json:"patient_no"`
	FirstName        string         `gorm:"size:255;not null" json:"first_name"`
	LastName         string         `gorm:"size:255;not null" json:"last_name"`
	Gender           string         `gorm:"size:20" json:"gender"`
	DateOfBirth      *time.Time     `gorm:"type:date" json:"date_of_birth,omitempty"`
	BloodGroup       *string        `gorm:"size:10" json:"blood_group,omitempty"`
	Phone            *string        `gorm:"size:50" json:"phone,omitempty"`
	Email            *string        `gorm:"size:255" json:"email,omitempty"`
	Address          *string        `gorm:"type:text" json:"address,omitempty"`
	EmergencyContact *string        `gorm:"size:255" json:"emergency_contact,omitempty"`
	EmergencyPhone   *string        `gorm:"size:50" json:"emergency_phone,omitempty"`
	MedicalHistory   *string        `gorm:"type:text" json:"medical_history,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	LinkedUser   *User         `gorm:"foreignKey:LinkedUserID" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"-"`
	Bills        []Bill        `gorm:"foreignKey:PatientID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new patient
func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Patient model
func (Patient) TableName() string {
	return "patients"
}

// FullName returns the patient's display name
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Ward represents a physical grouping of beds sharing type, department and
// floor. TotalBeds is fixed at creation; the bed rows are created with the
// ward and are never added or removed individually.
type Ward struct {
	ID                uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	WardNo            string                 `gorm:"size:100;unique;not null" json:"ward_no"`
	Name              string                 `gorm:"size:255;not null" json:"name"`
	Type              enum.WardType          `gorm:"size:50;default:'General'" json:"type"`
	Department        string                 `gorm:"size:255" json:"department"`
	Floor             int                    `gorm:"default:0" json:"floor"`
	TotalBeds         int                    `gorm:"not null" json:"total_beds"`
	DailyRate         int64                  `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	GenderRestriction enum.GenderRestriction `gorm:"size:20;default:'Mixed'" json:"gender_restriction"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
	DeletedAt         gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	Beds []Bed `gorm:"foreignKey:WardID" json:"beds,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal and expose the
// derived occupancy counts for API responses
func (w Ward) MarshalJSON() ([]byte, error) {
	type Alias Ward
	return json.Marshal(&struct {
		Alias
		DailyRate     float64 `json:"daily_rate"`
		OccupiedBeds  int     `json:"occupied_beds"`
		AvailableBeds int     `json:"available_beds"`
	}{
		Alias:         Alias(w),
		DailyRate:     float64(w.DailyRate) / 100,
		OccupiedBeds:  w.OccupiedBeds(),
		AvailableBeds: w.AvailableBeds(),
	})
}

// BeforeCreate generates a UUID before creating a new ward
func (w *Ward) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Ward model
func (Ward) TableName() string {
	return "wards"
}

// OccupiedBeds returns the number of occupied beds in the loaded bed set
func (w *Ward) OccupiedBeds() int {
	count := 0
	for _, bed := range w.Beds {
		if bed.IsOccupied {
			count++
		}
	}
	return count
}

// AvailableBeds returns the number of free beds. TotalBeds always equals
// occupied + available for a ward with its beds loaded.
func (w *Ward) AvailableBeds() int {
	return w.TotalBeds - w.OccupiedBeds()
}

// Bed is the unit of admission capacity within a ward. IsOccupied is true
// iff PatientID is set; both change together under AllocateBed/ReleaseBed.
type Bed struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	WardID                 uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_ward_bed_no" json:"ward_id"`
	BedNumber              int        `gorm:"not null;uniqueIndex:idx_ward_bed_no" json:"bed_number"`
	IsOccupied             bool       `gorm:"default:false" json:"is_occupied"`
	PatientID              *uuid.UUID `gorm:"type:uuid;index" json:"patient_id,omitempty"`
	AdmissionDate          *time.Time `json:"admission_date,omitempty"`
	ExpectedDischargeDate  *time.Time `json:"expected_discharge_date,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`

	// Relationships
	Ward    Ward     `gorm:"foreignKey:WardID" json:"-"`
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bed
func (b *Bed) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bed model
func (Bed) TableName() string {
	return "beds"
}

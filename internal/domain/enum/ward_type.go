package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// WardType represents the clinical category of a ward
type WardType string

const (
	WardTypeGeneral     WardType = "General"
	WardTypeICU         WardType = "ICU"
	WardTypeNICU        WardType = "NICU"
	WardTypePrivate     WardType = "Private"
	WardTypeSemiPrivate WardType = "Semi-Private"
	WardTypeEmergency   WardType = "Emergency"
	WardTypeIsolation   WardType = "Isolation"
)

// ValidWardTypes lists the accepted ward types
var ValidWardTypes = []WardType{
	WardTypeGeneral,
	WardTypeICU,
	WardTypeNICU,
	WardTypePrivate,
	WardTypeSemiPrivate,
	WardTypeEmergency,
	WardTypeIsolation,
}

func (t WardType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known ward type
func (t WardType) IsValid() bool {
	for _, v := range ValidWardTypes {
		if t == v {
			return true
		}
	}
	return false
}

func (t WardType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *WardType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = WardType(str)
	return nil
}

func (t WardType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *WardType) Scan(value interface{}) error {
	if value == nil {
		*t = WardTypeGeneral
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = WardType(v)
	case []byte:
		*t = WardType(string(v))
	}
	return nil
}

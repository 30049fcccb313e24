package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// GenderRestriction represents which patients a ward admits
type GenderRestriction string

const (
	GenderRestrictionMale   GenderRestriction = "Male"
	GenderRestrictionFemale GenderRestriction = "Female"
	GenderRestrictionMixed  GenderRestriction = "Mixed"
)

func (g GenderRestriction) String() string {
	return string(g)
}

// IsValid reports whether the value is a known gender restriction
func (g GenderRestriction) IsValid() bool {
	switch g {
	case GenderRestrictionMale, GenderRestrictionFemale, GenderRestrictionMixed:
		return true
	}
	return false
}

func (g GenderRestriction) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(g))
}

func (g *GenderRestriction) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*g = GenderRestriction(str)
	return nil
}

func (g GenderRestriction) Value() (driver.Value, error) {
	return string(g), nil
}

func (g *GenderRestriction) Scan(value interface{}) error {
	if value == nil {
		*g = GenderRestrictionMixed
		return nil
	}
	switch v := value.(type) {
	case string:
		*g = GenderRestriction(v)
	case []byte:
		*g = GenderRestriction(string(v))
	}
	return nil
}

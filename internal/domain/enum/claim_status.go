package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ClaimStatus represents the state of an insurance claim
type ClaimStatus string

const (
	ClaimStatusSubmitted ClaimStatus = "Submitted"
	ClaimStatusApproved  ClaimStatus = "Approved"
	ClaimStatusRejected  ClaimStatus = "Rejected"
	ClaimStatusSettled   ClaimStatus = "Settled"
)

func (s ClaimStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known claim status
func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusSubmitted, ClaimStatusApproved, ClaimStatusRejected, ClaimStatusSettled:
		return true
	}
	return false
}

func (s ClaimStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *ClaimStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = ClaimStatus(str)
	return nil
}

func (s ClaimStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *ClaimStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ClaimStatusSubmitted
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = ClaimStatus(v)
	case []byte:
		*s = ClaimStatus(string(v))
	}
	return nil
}

package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateBillNo generates a unique bill number
func GenerateBillNo() string {
	return "BILL-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateMedicineCode generates a unique medicine code
func GenerateMedicineCode() string {
	return "MED-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateWardNo generates a unique ward number
func GenerateWardNo() string {
	return "WARD-" + strings.ToUpper(uuid.New().String()[:8])
}

// GeneratePatientNo generates a unique patient number
func GeneratePatientNo() string {
	return "PAT-" + strings.ToUpper(uuid.New().String()[:8])
}

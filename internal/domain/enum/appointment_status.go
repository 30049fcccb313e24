package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus int

const (
	AppointmentStatusScheduled AppointmentStatus = 0
	AppointmentStatusConfirmed AppointmentStatus = 1
	AppointmentStatusCompleted AppointmentStatus = 2
	AppointmentStatusCancelled AppointmentStatus = 3
)

func (s AppointmentStatus) String() string {
	return [...]string{"Scheduled", "Confirmed", "Completed", "Cancelled"}[s]
}

// IsTerminal reports whether no further transitions are allowed
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// CanTransitionTo reports whether the status may move to the target state.
// Scheduled may be confirmed, completed or cancelled; Confirmed may be
// completed or cancelled; terminal states never change.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	if s.IsTerminal() || target == s {
		return false
	}
	switch s {
	case AppointmentStatusScheduled:
		return target == AppointmentStatusConfirmed ||
			target == AppointmentStatusCompleted ||
			target == AppointmentStatusCancelled
	case AppointmentStatusConfirmed:
		return target == AppointmentStatusCompleted ||
			target == AppointmentStatusCancelled
	}
	return false
}

// ParseAppointmentStatus maps a status name to its enum value
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch s {
	case "Scheduled":
		return AppointmentStatusScheduled, true
	case "Confirmed":
		return AppointmentStatusConfirmed, true
	case "Completed":
		return AppointmentStatusCompleted, true
	case "Cancelled":
		return AppointmentStatusCancelled, true
	}
	return AppointmentStatusScheduled, false
}

func (s AppointmentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *AppointmentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = AppointmentStatus(i)
		return nil
	}
	switch str {
	case "Scheduled":
		*s = AppointmentStatusScheduled
	case "Confirmed":
		*s = AppointmentStatusConfirmed
	case "Completed":
		*s = AppointmentStatusCompleted
	case "Cancelled":
		*s = AppointmentStatusCancelled
	}
	return nil
}

func (s AppointmentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *AppointmentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = AppointmentStatusScheduled
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = AppointmentStatus(v)
	case int:
		*s = AppointmentStatus(v)
	}
	return nil
}

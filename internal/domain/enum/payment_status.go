package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentStatus represents the settlement state of a bill
type PaymentStatus int

const (
	PaymentStatusUnpaid        PaymentStatus = 0
	PaymentStatusPartiallyPaid PaymentStatus = 1
	PaymentStatusPaid          PaymentStatus = 2
	PaymentStatusRefunded      PaymentStatus = 3
)

func (s PaymentStatus) String() string {
	return [...]string{"Unpaid", "Partially Paid", "Paid", "Refunded"}[s]
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	switch str {
	case "Unpaid":
		*s = PaymentStatusUnpaid
	case "Partially Paid":
		*s = PaymentStatusPartiallyPaid
	case "Paid":
		*s = PaymentStatusPaid
	case "Refunded":
		*s = PaymentStatusRefunded
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}

// ParsePaymentStatus maps a status name to its enum value
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch s {
	case "Unpaid":
		return PaymentStatusUnpaid, true
	case "Partially Paid":
		return PaymentStatusPartiallyPaid, true
	case "Paid":
		return PaymentStatusPaid, true
	case "Refunded":
		return PaymentStatusRefunded, true
	}
	return PaymentStatusUnpaid, false
}

// PaymentStatusFor derives the payment status from the amount paid so far
// against the bill total. Both amounts are in cents.
func PaymentStatusFor(amountPaid, totalAmount int64) PaymentStatus {
	switch {
	case amountPaid <= 0:
		return PaymentStatusUnpaid
	case amountPaid < totalAmount:
		return PaymentStatusPartiallyPaid
	default:
		return PaymentStatusPaid
	}
}

package booking

import "github.com/BruksfildServices01/zaban-academy/internal/httperr"

// ===============================
// Booking Status / Type
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

type Type string

const (
	TypePrivateClass  Type = "private_class"
	TypePlacementTest Type = "placement_test"
	TypeConsultation  Type = "consultation"
)

// DefaultSlotDuration is used when a slot is created without a duration.
const DefaultSlotDuration = 30

// ===============================
// Validations
// ===============================

// ParseType defaults an empty type to a private class.
func ParseType(raw string) (Type, error) {
	switch t := Type(raw); t {
	case "":
		return TypePrivateClass, nil
	case TypePrivateClass, TypePlacementTest, TypeConsultation:
		return t, nil
	default:
		return "", httperr.ErrBusiness("invalid_type")
	}
}

// InitialStatus is the status of a booking created by a successful claim.
func InitialStatus() Status {
	return StatusConfirmed
}

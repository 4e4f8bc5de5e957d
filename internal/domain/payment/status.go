package payment

import "github.com/BruksfildServices01/zaban-academy/internal/httperr"

// ===============================
// Payment Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Validations
// ===============================

// ParseTarget accepts only the statuses an admin may move a payment to.
func ParseTarget(raw string) (Status, error) {
	switch s := Status(raw); s {
	case StatusApproved, StatusRejected:
		return s, nil
	default:
		return "", httperr.ErrBusiness("invalid_status")
	}
}

// CanTransition allows pending -> approved|rejected. Repeating the current
// terminal status is accepted as a no-op.
func CanTransition(from, to Status) error {
	if from == to && to != StatusPending {
		return nil
	}
	if from == StatusPending && (to == StatusApproved || to == StatusRejected) {
		return nil
	}
	return httperr.ErrBusiness("invalid_transition")
}

// GrantsEntitlement reports whether reaching s creates a purchase.
func GrantsEntitlement(s Status) bool {
	return s == StatusApproved
}

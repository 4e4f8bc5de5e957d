package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

type Repository interface {
	// -------- Slots --------
	ListAvailableSlots(
		ctx context.Context,
		now time.Time,
	) ([]models.TimeSlot, error)

	ListSlots(
		ctx context.Context,
	) ([]models.TimeSlot, error)

	CreateSlot(
		ctx context.Context,
		slot *models.TimeSlot,
	) error

	// DeleteSlot removes a slot nobody has booked. It returns
	// slot_not_found or slot_has_booking business errors.
	DeleteSlot(
		ctx context.Context,
		id uint,
	) error

	// -------- Booking --------

	// ClaimSlot atomically flips the slot to booked (only if it is free and
	// starts at or after now) and inserts b in the same transaction.
	// b.Date is filled from the slot. Losing the race yields
	// slot_already_booked; a missing slot yields slot_not_found and a past
	// one slot_expired.
	ClaimSlot(
		ctx context.Context,
		b *models.Booking,
		now time.Time,
	) (*models.TimeSlot, error)

	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	ListBookingsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)
}

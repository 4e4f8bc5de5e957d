package dto

import (
	"time"

	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

type BookingDTO struct {
	ID        uint      `json:"id"`
	UserID    *uint     `json:"user_id"`
	SlotID    uint      `json:"slot_id"`
	Type      string    `json:"type"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes"`
	Slot      *SlotDTO  `json:"slot,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToBookingDTO(b models.Booking) BookingDTO {
	out := BookingDTO{
		ID:        b.ID,
		UserID:    b.UserID,
		SlotID:    b.SlotID,
		Type:      b.Type,
		Date:      b.Date,
		Status:    b.Status,
		Phone:     b.Phone,
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
	}
	if b.Slot.ID != 0 {
		s := ToSlotDTO(b.Slot)
		out.Slot = &s
	}
	return out
}

func ToBookingDTOs(bookings []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ToBookingDTO(b))
	}
	return out
}

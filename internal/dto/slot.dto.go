package dto

import (
	"time"

	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

type SlotDTO struct {
	ID          uint      `json:"id"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	DurationMin int       `json:"duration_minutes"`
	IsBooked    bool      `json:"is_booked"`
}

func ToSlotDTO(s models.TimeSlot) SlotDTO {
	return SlotDTO{
		ID:          s.ID,
		StartAt:     s.StartAt,
		EndAt:       s.StartAt.Add(time.Duration(s.DurationMin) * time.Minute),
		DurationMin: s.DurationMin,
		IsBooked:    s.IsBooked,
	}
}

func ToSlotDTOs(slots []models.TimeSlot) []SlotDTO {
	out := make([]SlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, ToSlotDTO(s))
	}
	return out
}

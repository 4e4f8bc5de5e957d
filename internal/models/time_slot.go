package models

import "time"

type TimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartAt     time.Time `gorm:"not null;index" json:"start_at"`
	DurationMin int       `gorm:"not null;default:30" json:"duration_minutes"`
	IsBooked    bool      `gorm:"not null;default:false;index" json:"is_booked"`

	CreatedAt time.Time `json:"created_at"`
}

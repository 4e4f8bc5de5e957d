package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint `gorm:"index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	SlotID uint     `gorm:"not null;uniqueIndex" json:"slot_id"`
	Slot   TimeSlot `gorm:"foreignKey:SlotID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"slot"`

	Type   string    `gorm:"size:30;not null;default:'private_class'" json:"type"`
	Date   time.Time `gorm:"not null" json:"date"`
	Status string    `gorm:"size:20;not null;default:'confirmed'" json:"status"`
	Phone  string    `gorm:"size:20;not null" json:"phone"`
	Notes  string    `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

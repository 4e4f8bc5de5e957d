package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint    `gorm:"not null;index" json:"user_id"`
	User      User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	ContentID uint    `gorm:"not null;index" json:"content_id"`
	Content   Content `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Amount       int64  `gorm:"not null" json:"amount"`
	Status       string `gorm:"size:20;not null;default:'pending';index" json:"status"`
	TrackingCode string `gorm:"size:100;not null" json:"tracking_code"`
	AdminNotes   string `gorm:"type:text" json:"admin_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

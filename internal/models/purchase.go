package models

import "time"

type Purchase struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint    `gorm:"not null;index:idx_purchases_user_content" json:"user_id"`
	ContentID uint    `gorm:"not null;index:idx_purchases_user_content" json:"content_id"`
	Content   Content `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// At most one purchase per payment; manual grants carry no payment.
	PaymentID *uint `gorm:"uniqueIndex" json:"payment_id"`

	CreatedAt time.Time `json:"created_at"`
}

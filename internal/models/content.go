package models

import "time"

type Content struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Type        string `gorm:"size:20;not null;default:'video'" json:"type"`
	Level       string `gorm:"size:20" json:"level"`

	URL        string `gorm:"size:1000" json:"url"`
	StorageKey string `gorm:"size:300" json:"storage_key"`

	IsPremium bool  `gorm:"not null;default:false" json:"is_premium"`
	Price     int64 `gorm:"not null;default:0" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;not null;default:'user'" json:"role"`

	Name   string `gorm:"size:100" json:"name"`
	Phone  string `gorm:"size:20;index" json:"phone"`
	Avatar string `gorm:"size:500" json:"avatar"`
	Bio    string `gorm:"type:text" json:"bio"`
	Level  string `gorm:"size:20" json:"level"`

	Streak        int `gorm:"not null;default:0" json:"streak"`
	LongestStreak int `gorm:"not null;default:0" json:"longest_streak"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

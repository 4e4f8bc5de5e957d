package dto

import (
	"time"

	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

type UserDTO struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username"`
	Role          string    `json:"role"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Avatar        string    `json:"avatar"`
	Bio           string    `json:"bio"`
	Level         string    `json:"level"`
	Streak        int       `json:"streak"`
	LongestStreak int       `json:"longest_streak"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToUserDTO(u models.User) UserDTO {
	return UserDTO{
		ID:            u.ID,
		Username:      u.Username,
		Role:          u.Role,
		Name:          u.Name,
		Phone:         u.Phone,
		Avatar:        u.Avatar,
		Bio:           u.Bio,
		Level:         u.Level,
		Streak:        u.Streak,
		LongestStreak: u.LongestStreak,
		CreatedAt:     u.CreatedAt,
	}
}

// AuthDTO is returned by login and register.
type AuthDTO struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

package user

import (
	"github.com/BruksfildServices01/zaban-academy/internal/auth"
	"github.com/BruksfildServices01/zaban-academy/internal/models"
	"github.com/BruksfildServices01/zaban-academy/internal/validators"
)

// MatchesAllowList reports whether u's username or phone, normalized, is
// one of the allow-listed numbers.
func MatchesAllowList(u *models.User, allow map[string]struct{}) bool {
	for _, candidate := range []string{u.Username, u.Phone} {
		if n := validators.NormalizePhone(candidate); n != "" {
			if _, ok := allow[n]; ok {
				return true
			}
		}
	}
	return false
}

func IsAdmin(u *models.User) bool {
	return u.Role == auth.RoleAdmin
}

func ValidLevel(level string) bool {
	switch level {
	case "", "A1", "A2", "B1", "B2", "C1", "C2":
		return true
	}
	return false
}

package content

import (
	"github.com/BruksfildServices01/zaban-academy/internal/auth"
	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

type Type string

const (
	TypeVideo   Type = "video"
	TypeArticle Type = "article"
	TypeCourse  Type = "course"
)

func ValidType(t string) bool {
	switch Type(t) {
	case TypeVideo, TypeArticle, TypeCourse:
		return true
	}
	return false
}

// Decision is the outcome of an access check before any purchase lookup.
type Decision int

const (
	Allow Decision = iota
	Deny
	NeedsPurchase
)

// Decide resolves what it can without storage: free content is open to
// everyone, premium content is open to admins, denied to anonymous
// callers, and otherwise depends on a purchase.
func Decide(c *models.Content, p *auth.Principal) Decision {
	if !c.IsPremium {
		return Allow
	}
	if p == nil {
		return Deny
	}
	if p.IsAdmin() {
		return Allow
	}
	return NeedsPurchase
}

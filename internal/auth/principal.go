package auth

import "github.com/gin-gonic/gin"

const (
	RoleUser    = "user"
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

const ContextPrincipal = "principal"

// Principal is the verified caller, built once per request by the auth
// middleware and handed explicitly to the use cases.
type Principal struct {
	UserID   uint
	Username string
	Role     string
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// FromContext returns the authenticated caller, or nil for anonymous requests.
func FromContext(c *gin.Context) *Principal {
	if v, ok := c.Get(ContextPrincipal); ok {
		if p, ok := v.(*Principal); ok {
			return p
		}
	}
	return nil
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/zaban-academy/internal/auth"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
)

// Authenticate resolves the bearer token into an auth.Principal. Requests
// without an Authorization header pass through anonymously; a header that
// is present but invalid is rejected with 401.
func Authenticate(jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, "invalid_token")
			return
		}

		principal, err := jwt.ParseAndValidate(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Abort(c, "invalid_token")
			return
		}

		c.Set(auth.ContextPrincipal, principal)
		c.Next()
	}
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.FromContext(c) == nil {
			httperr.Abort(c, "unauthorized")
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := auth.FromContext(c)
		if p == nil {
			httperr.Abort(c, "unauthorized")
			return
		}
		if !p.IsAdmin() {
			httperr.Abort(c, "forbidden")
			return
		}
		c.Next()
	}
}

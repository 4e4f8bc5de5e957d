package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/zaban-academy/internal/auth"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
)

// bindJSON answers invalid_request itself when the body does not decode.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.Respond(c, httperr.ErrBusiness("invalid_request"))
		return false
	}
	return true
}

// parseID reads a positive id. An absent value is missing_id, a malformed
// one invalid_id.
func parseID(raw string) (uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, httperr.ErrBusiness("missing_id")
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, httperr.ErrBusiness("invalid_id")
	}
	return uint(n), nil
}

// principal is only called behind RequireAuth / RequireAdmin.
func principal(c *gin.Context) *auth.Principal {
	return auth.FromContext(c)
}

func userIDPtr(p *auth.Principal) *uint {
	if p == nil {
		return nil
	}
	id := p.UserID
	return &id
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	ucUser "github.com/BruksfildServices01/zaban-academy/internal/usecase/user"
)

type UserHandler struct {
	promote *ucUser.PromoteKnownAdmins
}

func NewUserHandler(promote *ucUser.PromoteKnownAdmins) *UserHandler {
	return &UserHandler{promote: promote}
}

// Action dispatches POST /users?action=... . Promotion only ever touches
// allow-listed accounts, so any signed-in caller may trigger it.
func (h *UserHandler) Action(c *gin.Context) {
	switch c.Query("action") {
	case "upgrade-admins":
		upgraded, err := h.promote.Execute(c.Request.Context(), userIDPtr(principal(c)))
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"upgraded": upgraded,
			"count":    len(upgraded),
		})
	default:
		httperr.Respond(c, httperr.ErrBusiness("invalid_action"))
	}
}

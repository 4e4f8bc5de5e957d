package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/zaban-academy/internal/auth"
	userDomain "github.com/BruksfildServices01/zaban-academy/internal/domain/user"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/httpresp"
	ucUser "github.com/BruksfildServices01/zaban-academy/internal/usecase/user"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	register    *ucUser.Register
	login       *ucUser.Login
	currentUser *ucUser.GetCurrentUser
	updateUser  *ucUser.UpdateProfile
}

func NewAuthHandler(
	register *ucUser.Register,
	login *ucUser.Login,
	currentUser *ucUser.GetCurrentUser,
	updateUser *ucUser.UpdateProfile,
) *AuthHandler {
	return &AuthHandler{
		register:    register,
		login:       login,
		currentUser: currentUser,
		updateUser:  updateUser,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
	Bio    *string `json:"bio"`
	Level  *string `json:"level"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.register.Execute(c.Request.Context(), ucUser.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.login.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

// Logout is stateless: tokens are not stored server side, the client
// simply discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me answers {user: null} for anonymous callers rather than 401.
func (h *AuthHandler) Me(c *gin.Context) {
	p := auth.FromContext(c)
	if p == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	u, err := h.currentUser.Execute(c.Request.Context(), p.UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.updateUser.Execute(c.Request.Context(), principal(c).UserID, userDomain.ProfileUpdate{
		Name:   req.Name,
		Avatar: req.Avatar,
		Bio:    req.Bio,
		Level:  req.Level,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}

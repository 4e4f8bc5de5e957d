package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/zaban-academy/internal/auth"
)

func newTestRouter(jwt *auth.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Authenticate(jwt))

	r.GET("/whoami", func(c *gin.Context) {
		p := auth.FromContext(c)
		if p == nil {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": p.Username})
	})
	r.GET("/private", RequireAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func do(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	jwt := auth.NewJWTManager("secret", time.Hour)
	r := newTestRouter(jwt)

	userToken, err := jwt.GenerateAccessToken(1, "sara", auth.RoleUser)
	require.NoError(t, err)
	adminToken, err := jwt.GenerateAccessToken(2, "boss", auth.RoleAdmin)
	require.NoError(t, err)

	t.Run("anonymous passes optional routes", func(t *testing.T) {
		w := do(r, "/whoami", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user":null}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("invalid token is 401 even on optional routes", func(t *testing.T) {
		w := do(r, "/whoami", "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_token")
	})

	t.Run("require auth", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(r, "/private", "").Code)
		assert.Equal(t, http.StatusOK, do(r, "/private", userToken).Code)
	})

	t.Run("require admin", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(r, "/admin", "").Code)
		assert.Equal(t, http.StatusForbidden, do(r, "/admin", userToken).Code)
		assert.Equal(t, http.StatusOK, do(r, "/admin", adminToken).Code)
	})
}

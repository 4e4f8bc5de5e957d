package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Respond(c, err)

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespond_BusinessCodes(t *testing.T) {
	cases := map[string]int{
		"missing_date":        http.StatusBadRequest,
		"slot_not_found":      http.StatusNotFound,
		"slot_already_booked": http.StatusConflict,
		"username_taken":      http.StatusBadRequest,
		"invalid_token":       http.StatusUnauthorized,
		"purchase_required":   http.StatusForbidden,
		"some_unknown_code":   http.StatusBadRequest,
	}

	for code, want := range cases {
		status, body := respond(t, fmt.Errorf("wrapped: %w", ErrBusiness(code)))
		assert.Equal(t, want, status, code)
		assert.Equal(t, code, body.Code)
		assert.NotEmpty(t, body.Message)
	}
}

func TestRespond_InternalHidesDetailByDefault(t *testing.T) {
	ExposeDetail(false)
	status, body := respond(t, errors.New("dial tcp: refused"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal_error", body.Code)
	assert.Empty(t, body.Detail)

	ExposeDetail(true)
	defer ExposeDetail(false)
	_, body = respond(t, errors.New("dial tcp: refused"))
	assert.Equal(t, "dial tcp: refused", body.Detail)
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
}

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("ctx: %w", ErrBusiness("slot_expired"))
	assert.True(t, IsBusiness(err, "slot_expired"))
	assert.False(t, IsBusiness(err, "slot_not_found"))
	assert.Equal(t, "", CodeOf(errors.New("x")))
}

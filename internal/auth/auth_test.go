package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, err := m.GenerateAccessToken(42, "09121234567", RoleAdmin)
	require.NoError(t, err)

	p, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), p.UserID)
	assert.Equal(t, "09121234567", p.Username)
	assert.True(t, p.IsAdmin())
}

func TestJWTManager_RejectsForeignSecret(t *testing.T) {
	token, err := NewJWTManager("one", time.Hour).GenerateAccessToken(1, "a", RoleUser)
	require.NoError(t, err)

	_, err = NewJWTManager("two", time.Hour).ParseAndValidate(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsExpired(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)
	token, err := m.GenerateAccessToken(1, "a", RoleUser)
	require.NoError(t, err)

	_, err = m.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestPrincipal_IsAdminNilSafe(t *testing.T) {
	var p *Principal
	assert.False(t, p.IsAdmin())
	assert.False(t, (&Principal{Role: RoleStudent}).IsAdmin())
}

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasherWithCost(4)

	hash, err := h.Hash("s3cret!")
	require.NoError(t, err)
	assert.NoError(t, h.Compare(hash, "s3cret!"))
	assert.Error(t, h.Compare(hash, "wrong"))
}

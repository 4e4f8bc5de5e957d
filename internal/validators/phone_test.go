package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"09121234567":      "09121234567",
		"+989121234567":    "09121234567",
		"00989121234567":   "09121234567",
		"989121234567":     "09121234567",
		"9121234567":       "09121234567",
		"0912 123 4567":    "09121234567",
		"0912-123-4567":    "09121234567",
		"۰۹۱۲۱۲۳۴۵۶۷":      "09121234567",
		"":                 "",
		"ali":              "",
		"0212345678":       "",
		"091212345678":     "",
		"0912123456a":      "",
		"+98 912 123 4567": "09121234567",
	}

	for in, want := range cases {
		assert.Equal(t, want, NormalizePhone(in), "input %q", in)
	}
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "09121234567", NormalizeUsername("+989121234567"))
	assert.Equal(t, "sara", NormalizeUsername("  Sara "))
	assert.True(t, IsMobile("09351112233"))
	assert.False(t, IsMobile("sara"))
}

package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusApproved, StatusApproved, true},
		{StatusRejected, StatusRejected, true},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusApproved, false},
		{StatusApproved, StatusPending, false},
		{StatusPending, StatusPending, false},
	}

	for _, tc := range cases {
		err := CanTransition(tc.from, tc.to)
		if tc.ok {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			assert.True(t, httperr.IsBusiness(err, "invalid_transition"), "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestParseTarget(t *testing.T) {
	s, err := ParseTarget("approved")
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, s)

	_, err = ParseTarget("pending")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

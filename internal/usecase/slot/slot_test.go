package slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/models"
	"github.com/BruksfildServices01/zaban-academy/internal/testutil/memrepo"
)

func tehran(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tehran")
	require.NoError(t, err)
	return loc
}

func TestListAvailableSlots_SkipsBookedAndPast(t *testing.T) {
	ctx := context.Background()
	store := memrepo.New()
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	seed := []models.TimeSlot{
		{StartAt: now.Add(2 * time.Hour), DurationMin: 30},
		{StartAt: now.Add(time.Hour), DurationMin: 30},
		{StartAt: now.Add(-time.Hour), DurationMin: 30},
		{StartAt: now.Add(3 * time.Hour), DurationMin: 30, IsBooked: true},
		{StartAt: now, DurationMin: 45},
	}
	for i := range seed {
		require.NoError(t, store.Bookings.CreateSlot(ctx, &seed[i]))
	}

	uc := NewListAvailableSlots(store.Bookings)
	uc.now = func() time.Time { return now }

	got, err := uc.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i, s := range got {
		assert.False(t, s.IsBooked)
		assert.False(t, s.StartAt.Before(now))
		if i > 0 {
			assert.True(t, got[i-1].StartAt.Before(s.StartAt))
		}
	}
	assert.Equal(t, now, got[0].StartAt)
	assert.Equal(t, now.Add(45*time.Minute), got[0].EndAt)
}

func TestCreateSlot(t *testing.T) {
	ctx := context.Background()
	store := memrepo.New()
	loc := tehran(t)
	uc := NewCreateSlot(store.Bookings, nil, loc)

	slot, err := uc.Execute(ctx, CreateSlotInput{Start: "2025-03-01 17:30"})
	require.NoError(t, err)
	assert.Equal(t, 30, slot.DurationMin)
	assert.False(t, slot.IsBooked)
	assert.Equal(t, time.Date(2025, 3, 1, 17, 30, 0, 0, loc).Unix(), slot.StartAt.Unix())

	slot, err = uc.Execute(ctx, CreateSlotInput{Start: "2025-03-01T14:00:00Z", DurationMin: 60})
	require.NoError(t, err)
	assert.Equal(t, 60, slot.DurationMin)
	assert.Equal(t, time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC).Unix(), slot.StartAt.Unix())

	_, err = uc.Execute(ctx, CreateSlotInput{Start: ""})
	assert.True(t, httperr.IsBusiness(err, "missing_date"))

	_, err = uc.Execute(ctx, CreateSlotInput{Start: "tomorrow"})
	assert.True(t, httperr.IsBusiness(err, "missing_date"))
}

func TestDeleteSlot(t *testing.T) {
	ctx := context.Background()
	store := memrepo.New()
	uc := NewDeleteSlot(store.Bookings, nil)

	free := &models.TimeSlot{StartAt: time.Now().Add(time.Hour), DurationMin: 30}
	taken := &models.TimeSlot{StartAt: time.Now().Add(2 * time.Hour), DurationMin: 30}
	require.NoError(t, store.Bookings.CreateSlot(ctx, free))
	require.NoError(t, store.Bookings.CreateSlot(ctx, taken))
	_, err := store.Bookings.ClaimSlot(ctx, &models.Booking{SlotID: taken.ID, Phone: "09121234567"}, time.Now())
	require.NoError(t, err)

	assert.True(t, httperr.IsBusiness(uc.Execute(ctx, 0, 1), "missing_id"))
	assert.True(t, httperr.IsBusiness(uc.Execute(ctx, 999, 1), "slot_not_found"))
	assert.True(t, httperr.IsBusiness(uc.Execute(ctx, taken.ID, 1), "slot_has_booking"))

	require.NoError(t, uc.Execute(ctx, free.ID, 1))
	_, ok := store.Slot(free.ID)
	assert.False(t, ok)
	_, ok = store.Slot(taken.ID)
	assert.True(t, ok)
}

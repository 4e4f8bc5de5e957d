package slot

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/zaban-academy/internal/audit"
	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/booking"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateSlotInput struct {
	// Start is RFC 3339, or "2006-01-02 15:04" in the academy timezone.
	Start       string
	DurationMin int
	ActorID     uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCreateSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateSlot {
	return &CreateSlot{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateSlot) Execute(
	ctx context.Context,
	in CreateSlotInput,
) (*models.TimeSlot, error) {

	start, err := ParseStart(in.Start, uc.loc)
	if err != nil {
		return nil, err
	}

	duration := in.DurationMin
	if duration <= 0 {
		duration = domain.DefaultSlotDuration
	}

	slot := &models.TimeSlot{
		StartAt:     start,
		DurationMin: duration,
		IsBooked:    false,
	}

	if err := uc.repo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ActorID,
		Action:   "slot_created",
		Entity:   "time_slot",
		EntityID: &slot.ID,
		Metadata: map[string]any{"start_at": slot.StartAt},
	})

	return slot, nil
}

var startLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseStart reads an absolute timestamp; zone-less inputs are taken in loc.
func ParseStart(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, httperr.ErrBusiness("missing_date")
	}

	for i, layout := range startLayouts {
		var (
			t   time.Time
			err error
		)
		if i == 0 {
			t, err = time.Parse(layout, raw)
		} else {
			t, err = time.ParseInLocation(layout, raw, loc)
		}
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, httperr.ErrBusiness("missing_date")
}

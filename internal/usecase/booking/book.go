package booking

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/zaban-academy/internal/audit"
	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/booking"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/metrics"
	"github.com/BruksfildServices01/zaban-academy/internal/models"
	"github.com/BruksfildServices01/zaban-academy/internal/notify"
	"github.com/BruksfildServices01/zaban-academy/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type BookSlotInput struct {
	SlotID uint
	UserID *uint // nil for guest bookings
	Phone  string
	Notes  string
	Type   string
}

// ======================================================
// USE CASE
// ======================================================

type BookSlot struct {
	repo          domain.Repository
	notifier      *notify.Dispatcher
	audit         *audit.Dispatcher
	operatorPhone string
	loc           *time.Location
	now           func() time.Time
}

func NewBookSlot(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	audit *audit.Dispatcher,
	operatorPhone string,
	loc *time.Location,
) *BookSlot {
	return &BookSlot{
		repo:          repo,
		notifier:      notifier,
		audit:         audit,
		operatorPhone: operatorPhone,
		loc:           loc,
		now:           time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookSlot) Execute(
	ctx context.Context,
	in BookSlotInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1) Input
	// --------------------------------------------------
	if in.SlotID == 0 {
		return nil, httperr.ErrBusiness("missing_slot_id")
	}

	phone := validators.NormalizePhone(in.Phone)
	if phone == "" {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	bookingType, err := domain.ParseType(in.Type)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2) Claim + insert, one transaction
	// --------------------------------------------------
	b := &models.Booking{
		UserID: in.UserID,
		SlotID: in.SlotID,
		Type:   string(bookingType),
		Status: string(domain.InitialStatus()),
		Phone:  phone,
		Notes:  strings.TrimSpace(in.Notes),
	}

	slot, err := uc.repo.ClaimSlot(ctx, b, uc.now())
	if err != nil {
		if httperr.IsBusiness(err, "slot_already_booked") {
			metrics.BookingConflicts.Inc()
		}
		return nil, err
	}
	metrics.BookingsCreated.Inc()

	// --------------------------------------------------
	// 3) Side effects after commit, never failing the call
	// --------------------------------------------------
	uc.notifier.Dispatch(notify.Message{
		To:   uc.operatorPhone,
		Text: notify.BookingText(b.Type, slot.StartAt.In(uc.loc), b.Phone, b.Notes),
	})

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"slot_id": b.SlotID},
	})

	zap.L().Info("slot booked",
		zap.Uint("booking_id", b.ID),
		zap.Uint("slot_id", b.SlotID),
	)

	return b, nil
}

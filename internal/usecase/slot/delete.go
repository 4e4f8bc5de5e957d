package slot

import (
	"context"

	"github.com/BruksfildServices01/zaban-academy/internal/audit"
	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/booking"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
)

// DeleteSlot refuses slots that a booking references.
type DeleteSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteSlot {
	return &DeleteSlot{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteSlot) Execute(
	ctx context.Context,
	id uint,
	actorID uint,
) error {

	if id == 0 {
		return httperr.ErrBusiness("missing_id")
	}

	if err := uc.repo.DeleteSlot(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "slot_deleted",
		Entity:   "time_slot",
		EntityID: &id,
	})

	return nil
}

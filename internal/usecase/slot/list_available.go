package slot

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/booking"
	"github.com/BruksfildServices01/zaban-academy/internal/dto"
)

// ListAvailableSlots returns free slots that have not started yet, earliest
// first.
type ListAvailableSlots struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListAvailableSlots(
	repo domain.Repository,
) *ListAvailableSlots {
	return &ListAvailableSlots{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *ListAvailableSlots) Execute(
	ctx context.Context,
) ([]dto.SlotDTO, error) {

	slots, err := uc.repo.ListAvailableSlots(ctx, uc.now())
	if err != nil {
		return nil, err
	}

	return dto.ToSlotDTOs(slots), nil
}

type ListSlots struct {
	repo domain.Repository
}

func NewListSlots(
	repo domain.Repository,
) *ListSlots {
	return &ListSlots{
		repo: repo,
	}
}

func (uc *ListSlots) Execute(
	ctx context.Context,
) ([]dto.SlotDTO, error) {

	slots, err := uc.repo.ListSlots(ctx)
	if err != nil {
		return nil, err
	}

	return dto.ToSlotDTOs(slots), nil
}

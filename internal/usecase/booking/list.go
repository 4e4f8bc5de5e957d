package booking

import (
	"context"

	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/booking"
	"github.com/BruksfildServices01/zaban-academy/internal/dto"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(
	repo domain.Repository,
) *ListBookings {
	return &ListBookings{
		repo: repo,
	}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
) ([]dto.BookingDTO, error) {

	bookings, err := uc.repo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToBookingDTOs(bookings), nil
}

type ListMyBookings struct {
	repo domain.Repository
}

func NewListMyBookings(
	repo domain.Repository,
) *ListMyBookings {
	return &ListMyBookings{
		repo: repo,
	}
}

func (uc *ListMyBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.BookingDTO, error) {

	bookings, err := uc.repo.ListBookingsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.ToBookingDTOs(bookings), nil
}

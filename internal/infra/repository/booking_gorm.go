package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/booking"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (r *BookingGormRepository) ListAvailableSlots(
	ctx context.Context,
	now time.Time,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("is_booked = ? AND start_at >= ?", false, now).
		Order("start_at ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *BookingGormRepository) ListSlots(
	ctx context.Context,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Order("start_at ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *BookingGormRepository) CreateSlot(
	ctx context.Context,
	slot *models.TimeSlot,
) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *BookingGormRepository) DeleteSlot(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND NOT EXISTS (SELECT 1 FROM bookings WHERE bookings.slot_id = time_slots.id)", id).
		Delete(&models.TimeSlot{})
	if res.Error != nil {
		// A booking committed concurrently trips the RESTRICT foreign key.
		if httperr.IsForeignKeyViolation(res.Error) {
			return httperr.ErrBusiness("slot_has_booking")
		}
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return httperr.ErrBusiness("slot_not_found")
	}
	return httperr.ErrBusiness("slot_has_booking")
}

// --------------------------------------------------
// Booking (claim)
// --------------------------------------------------

func (r *BookingGormRepository) ClaimSlot(
	ctx context.Context,
	b *models.Booking,
	now time.Time,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		res := tx.Model(&models.TimeSlot{}).
			Where("id = ? AND is_booked = ? AND start_at >= ?", b.SlotID, false, now).
			Update("is_booked", true)
		if res.Error != nil {
			return res.Error
		}

		if err := tx.First(&slot, b.SlotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("slot_not_found")
			}
			return err
		}

		if res.RowsAffected == 0 {
			if slot.IsBooked {
				return httperr.ErrBusiness("slot_already_booked")
			}
			return httperr.ErrBusiness("slot_expired")
		}

		b.Date = slot.StartAt
		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness("slot_already_booked")
			}
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	b.Slot = slot
	return &slot, nil
}

// --------------------------------------------------
// Booking (list)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Slot").
		Order("created_at DESC, id DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Slot").
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)

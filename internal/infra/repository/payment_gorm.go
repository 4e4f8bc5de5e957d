package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/payment"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) GetContent(
	ctx context.Context,
	id uint,
) (*models.Content, error) {
	return getContent(ctx, r.db, id)
}

func (r *PaymentGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *PaymentGormRepository) ListPayments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Payment, error) {

	q := r.db.WithContext(ctx).Model(&models.Payment{})
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.UserID != 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}

	var payments []models.Payment
	if err := q.
		Order("created_at DESC, id DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// --------------------------------------------------
// Transition (compare-and-set on status)
// --------------------------------------------------

func (r *PaymentGormRepository) Transition(
	ctx context.Context,
	id uint,
	to domain.Status,
	notes string,
) (*models.Payment, bool, error) {

	var (
		p       models.Payment
		changed bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		res := tx.Model(&models.Payment{}).
			Where("id = ? AND status = ?", id, string(domain.StatusPending)).
			Updates(map[string]any{
				"status":      string(to),
				"admin_notes": notes,
			})
		if res.Error != nil {
			return res.Error
		}

		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("payment_not_found")
			}
			return err
		}

		changed = res.RowsAffected == 1
		if !changed {
			if err := domain.CanTransition(domain.Status(p.Status), to); err != nil {
				return err
			}
		}

		if !domain.GrantsEntitlement(to) {
			return nil
		}

		purchase := models.Purchase{
			UserID:    p.UserID,
			ContentID: p.ContentID,
			PaymentID: &p.ID,
		}
		return tx.
			Omit(clause.Associations).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&purchase).Error
	})
	if err != nil {
		return nil, false, err
	}

	return &p, changed, nil
}

func getContent(ctx context.Context, db *gorm.DB, id uint) (*models.Content, error) {
	var c models.Content
	if err := db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("content_not_found")
		}
		return nil, err
	}
	return &c, nil
}

// Compile-time check
var _ domain.Repository = (*PaymentGormRepository)(nil)

package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/content"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

type ContentGormRepository struct {
	db *gorm.DB
}

func NewContentGormRepository(db *gorm.DB) *ContentGormRepository {
	return &ContentGormRepository{db: db}
}

func (r *ContentGormRepository) List(ctx context.Context) ([]models.Content, error) {
	var items []models.Content
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ContentGormRepository) Get(ctx context.Context, id uint) (*models.Content, error) {
	return getContent(ctx, r.db, id)
}

func (r *ContentGormRepository) Create(ctx context.Context, c *models.Content) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContentGormRepository) Update(ctx context.Context, c *models.Content) error {
	res := r.db.WithContext(ctx).
		Model(&models.Content{}).
		Where("id = ?", c.ID).
		Select("title", "description", "type", "level", "url", "storage_key", "is_premium", "price").
		Updates(c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("content_not_found")
	}
	return nil
}

func (r *ContentGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var payments int64
		if err := tx.Model(&models.Payment{}).
			Where("content_id = ?", id).
			Count(&payments).Error; err != nil {
			return err
		}
		if payments > 0 {
			return httperr.ErrBusiness("content_in_use")
		}

		res := tx.Delete(&models.Content{}, id)
		if res.Error != nil {
			if httperr.IsForeignKeyViolation(res.Error) {
				return httperr.ErrBusiness("content_in_use")
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("content_not_found")
		}
		return nil
	})
}

// --------------------------------------------------
// Entitlement
// --------------------------------------------------

func (r *ContentGormRepository) HasPurchase(ctx context.Context, userID, contentID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Purchase{}).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ContentGormRepository) ListPurchases(ctx context.Context, userID uint) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Content").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// Compile-time check
var _ domain.Repository = (*ContentGormRepository)(nil)

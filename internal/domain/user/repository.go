package user

import (
	"context"

	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

type ProfileUpdate struct {
	Name   *string
	Avatar *string
	Bio    *string
	Level  *string
}

type Repository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)

	// GetByUsername returns user_not_found when absent.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Create returns username_taken on a duplicate username.
	Create(ctx context.Context, u *models.User) error

	UpdateProfile(ctx context.Context, id uint, in ProfileUpdate) (*models.User, error)

	ListAll(ctx context.Context) ([]models.User, error)

	// PromoteToAdmin sets role=admin only where it is not already admin
	// and reports whether a row changed.
	PromoteToAdmin(ctx context.Context, id uint) (bool, error)
}

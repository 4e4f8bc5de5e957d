package content

import (
	"context"

	"github.com/BruksfildServices01/zaban-academy/internal/auth"
	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/content"
	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

// CheckAccess answers whether principal (nil for anonymous) may consume c.
type CheckAccess struct {
	repo domain.Repository
}

func NewCheckAccess(
	repo domain.Repository,
) *CheckAccess {
	return &CheckAccess{
		repo: repo,
	}
}

func (uc *CheckAccess) Execute(
	ctx context.Context,
	p *auth.Principal,
	c *models.Content,
) (bool, error) {

	switch domain.Decide(c, p) {
	case domain.Allow:
		return true, nil
	case domain.Deny:
		return false, nil
	}

	return uc.repo.HasPurchase(ctx, p.UserID, c.ID)
}

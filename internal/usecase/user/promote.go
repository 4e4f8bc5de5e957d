package user

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/zaban-academy/internal/audit"
	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/user"
	"github.com/BruksfildServices01/zaban-academy/internal/metrics"
	"github.com/BruksfildServices01/zaban-academy/internal/validators"
)

// PromoteKnownAdmins upgrades every user whose username or phone is on the
// configured allow-list. Running it again changes nothing.
type PromoteKnownAdmins struct {
	repo  domain.Repository
	allow map[string]struct{}
	audit *audit.Dispatcher
}

func NewPromoteKnownAdmins(
	repo domain.Repository,
	phones []string,
	audit *audit.Dispatcher,
) *PromoteKnownAdmins {
	allow := make(map[string]struct{}, len(phones))
	for _, p := range phones {
		if n := validators.NormalizePhone(p); n != "" {
			allow[n] = struct{}{}
		}
	}
	return &PromoteKnownAdmins{
		repo:  repo,
		allow: allow,
		audit: audit,
	}
}

// Execute returns the usernames that were actually upgraded by this call.
func (uc *PromoteKnownAdmins) Execute(
	ctx context.Context,
	actorID *uint,
) ([]string, error) {

	upgraded := []string{}
	if len(uc.allow) == 0 {
		return upgraded, nil
	}

	users, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		u := &users[i]
		if domain.IsAdmin(u) || !domain.MatchesAllowList(u, uc.allow) {
			continue
		}

		changed, err := uc.repo.PromoteToAdmin(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		if !changed {
			continue
		}

		upgraded = append(upgraded, u.Username)
		metrics.AdminsPromoted.Inc()
		zap.L().Info("user promoted to admin", zap.Uint("user_id", u.ID), zap.String("username", u.Username))

		uc.audit.Dispatch(audit.Event{
			ActorID:  actorID,
			Action:   "admin_promoted",
			Entity:   "user",
			EntityID: &u.ID,
		})
	}

	return upgraded, nil
}

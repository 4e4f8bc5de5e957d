package payment

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/zaban-academy/internal/audit"
	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/payment"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/metrics"
	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdatePaymentStatusInput struct {
	ID      uint
	Status  string
	Notes   string
	ActorID uint
}

// ======================================================
// USE CASE
// ======================================================

// UpdatePaymentStatus applies an admin decision. Approval grants the
// purchase exactly once no matter how often it is repeated.
type UpdatePaymentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdatePaymentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdatePaymentStatus {
	return &UpdatePaymentStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdatePaymentStatus) Execute(
	ctx context.Context,
	in UpdatePaymentStatusInput,
) (*models.Payment, error) {

	if in.ID == 0 {
		return nil, httperr.ErrBusiness("missing_id")
	}

	to, err := domain.ParseTarget(in.Status)
	if err != nil {
		return nil, err
	}

	p, changed, err := uc.repo.Transition(ctx, in.ID, to, strings.TrimSpace(in.Notes))
	if err != nil {
		return nil, err
	}

	if !changed {
		zap.L().Info("payment status unchanged", zap.Uint("payment_id", p.ID), zap.String("status", p.Status))
		return p, nil
	}

	metrics.PaymentTransitions.WithLabelValues(string(to)).Inc()

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ActorID,
		Action:   "payment_" + string(to),
		Entity:   "payment",
		EntityID: &p.ID,
		Metadata: map[string]any{"user_id": p.UserID, "content_id": p.ContentID},
	})

	return p, nil
}

package payment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/zaban-academy/internal/audit"
	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/payment"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreatePaymentInput struct {
	UserID       uint
	ContentID    uint
	Amount       int64 // optional; must equal the content price when set
	TrackingCode string
}

// ======================================================
// USE CASE
// ======================================================

// CreatePayment records a pending payment. The amount is always the
// content's current price; the client value is only cross-checked.
type CreatePayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreatePayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreatePayment {
	return &CreatePayment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreatePayment) Execute(
	ctx context.Context,
	in CreatePaymentInput,
) (*models.Payment, error) {

	if in.ContentID == 0 {
		return nil, httperr.ErrBusiness("missing_id")
	}

	tracking := strings.TrimSpace(in.TrackingCode)
	if tracking == "" {
		return nil, httperr.ErrBusiness("missing_tracking")
	}

	content, err := uc.repo.GetContent(ctx, in.ContentID)
	if err != nil {
		return nil, err
	}
	if !content.IsPremium {
		return nil, httperr.ErrBusiness("not_for_sale")
	}

	if in.Amount != 0 && in.Amount != content.Price {
		return nil, httperr.ErrBusiness("amount_mismatch")
	}

	p := &models.Payment{
		UserID:       in.UserID,
		ContentID:    content.ID,
		Amount:       content.Price,
		Status:       string(domain.InitialStatus()),
		TrackingCode: tracking,
	}

	if err := uc.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.UserID,
		Action:   "payment_created",
		Entity:   "payment",
		EntityID: &p.ID,
		Metadata: map[string]any{"content_id": p.ContentID, "amount": p.Amount},
	})

	return p, nil
}

package payment

import (
	"context"

	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

type ListFilter struct {
	Status Status
	UserID uint
}

type Repository interface {
	GetContent(
		ctx context.Context,
		id uint,
	) (*models.Content, error)

	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	ListPayments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Payment, error)

	// Transition moves a payment out of pending with a conditional update
	// and, for approvals, inserts its purchase in the same transaction.
	// changed is false when the payment already had status to (for an
	// approval the purchase is still ensured). Other states yield
	// invalid_transition; a missing payment yields payment_not_found.
	Transition(
		ctx context.Context,
		id uint,
		to Status,
		notes string,
	) (p *models.Payment, changed bool, err error)
}

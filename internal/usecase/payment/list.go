package payment

import (
	"context"

	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/payment"
	"github.com/BruksfildServices01/zaban-academy/internal/dto"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
)

type ListPayments struct {
	repo domain.Repository
}

func NewListPayments(
	repo domain.Repository,
) *ListPayments {
	return &ListPayments{
		repo: repo,
	}
}

// Execute lists every payment, optionally narrowed to one status.
func (uc *ListPayments) Execute(
	ctx context.Context,
	status string,
) ([]dto.PaymentDTO, error) {

	filter := domain.ListFilter{}
	if status != "" {
		switch s := domain.Status(status); s {
		case domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
			filter.Status = s
		default:
			return nil, httperr.ErrBusiness("invalid_status")
		}
	}

	payments, err := uc.repo.ListPayments(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.ToPaymentDTOs(payments), nil
}

type ListMyPayments struct {
	repo domain.Repository
}

func NewListMyPayments(
	repo domain.Repository,
) *ListMyPayments {
	return &ListMyPayments{
		repo: repo,
	}
}

func (uc *ListMyPayments) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.PaymentDTO, error) {

	payments, err := uc.repo.ListPayments(ctx, domain.ListFilter{UserID: userID})
	if err != nil {
		return nil, err
	}
	return dto.ToPaymentDTOs(payments), nil
}

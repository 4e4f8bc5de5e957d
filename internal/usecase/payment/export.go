package payment

import (
	"context"

	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/payment"
	"github.com/BruksfildServices01/zaban-academy/internal/export"
)

type ExportPayments struct {
	repo domain.Repository
}

func NewExportPayments(
	repo domain.Repository,
) *ExportPayments {
	return &ExportPayments{
		repo: repo,
	}
}

// Execute renders every payment as an xlsx workbook.
func (uc *ExportPayments) Execute(
	ctx context.Context,
) ([]byte, error) {

	payments, err := uc.repo.ListPayments(ctx, domain.ListFilter{})
	if err != nil {
		return nil, err
	}
	return export.PaymentsWorkbook(payments)
}

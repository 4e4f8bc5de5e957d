package dto

import (
	"time"

	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

type PaymentDTO struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	ContentID    uint      `json:"content_id"`
	Amount       int64     `json:"amount"`
	Status       string    `json:"status"`
	TrackingCode string    `json:"tracking_code"`
	AdminNotes   string    `json:"admin_notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToPaymentDTO(p models.Payment) PaymentDTO {
	return PaymentDTO{
		ID:           p.ID,
		UserID:       p.UserID,
		ContentID:    p.ContentID,
		Amount:       p.Amount,
		Status:       p.Status,
		TrackingCode: p.TrackingCode,
		AdminNotes:   p.AdminNotes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func ToPaymentDTOs(payments []models.Payment) []PaymentDTO {
	out := make([]PaymentDTO, 0, len(payments))
	for _, p := range payments {
		out = append(out, ToPaymentDTO(p))
	}
	return out
}

type PurchaseDTO struct {
	ID        uint        `json:"id"`
	ContentID uint        `json:"content_id"`
	PaymentID *uint       `json:"payment_id"`
	Content   *ContentDTO `json:"content,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

func ToPurchaseDTOs(purchases []models.Purchase) []PurchaseDTO {
	out := make([]PurchaseDTO, 0, len(purchases))
	for _, p := range purchases {
		d := PurchaseDTO{
			ID:        p.ID,
			ContentID: p.ContentID,
			PaymentID: p.PaymentID,
			CreatedAt: p.CreatedAt,
		}
		if p.Content.ID != 0 {
			c := ToContentDTO(p.Content)
			d.Content = &c
		}
		out = append(out, d)
	}
	return out
}

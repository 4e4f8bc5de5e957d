package dto

import (
	"time"

	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

// ContentDTO never exposes the storage key; media is reached through a
// signed stream link.
type ContentDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Level       string    `json:"level"`
	URL         string    `json:"url,omitempty"`
	HasMedia    bool      `json:"has_media"`
	IsPremium   bool      `json:"is_premium"`
	Price       int64     `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToContentDTO(c models.Content) ContentDTO {
	out := ContentDTO{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Type:        c.Type,
		Level:       c.Level,
		HasMedia:    c.StorageKey != "" || c.URL != "",
		IsPremium:   c.IsPremium,
		Price:       c.Price,
		CreatedAt:   c.CreatedAt,
	}
	if !c.IsPremium {
		out.URL = c.URL
	}
	return out
}

func ToContentDTOs(items []models.Content) []ContentDTO {
	out := make([]ContentDTO, 0, len(items))
	for _, c := range items {
		out = append(out, ToContentDTO(c))
	}
	return out
}

type UploadLinkDTO struct {
	UploadURL string    `json:"uploadUrl"`
	FileKey   string    `json:"fileKey"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type StreamLinkDTO struct {
	URL         string     `json:"url"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	Size        int64      `json:"size,omitempty"`
	ContentType string     `json:"contentType,omitempty"`
}

package content

import (
	"context"
	"time"

	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Content, error)
	Get(ctx context.Context, id uint) (*models.Content, error)
	Create(ctx context.Context, c *models.Content) error
	Update(ctx context.Context, c *models.Content) error

	// Delete refuses content referenced by a payment (content_in_use).
	Delete(ctx context.Context, id uint) error

	// -------- Entitlement --------
	HasPurchase(ctx context.Context, userID, contentID uint) (bool, error)
	ListPurchases(ctx context.Context, userID uint) ([]models.Purchase, error)
}

// ObjectInfo is cached metadata of a stored media object.
type ObjectInfo struct {
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// ObjectStore issues short-lived signed URLs; clients never see storage
// credentials.
type ObjectStore interface {
	PresignUpload(ctx context.Context, key, contentType string) (string, time.Time, error)
	PresignDownload(ctx context.Context, key string) (string, time.Time, error)
	Stat(ctx context.Context, key string) (*ObjectInfo, error)
}

// Cache is best effort: misses and failures fall back to the source.
type Cache interface {
	GetList(ctx context.Context) ([]models.Content, bool)
	SetList(ctx context.Context, items []models.Content)
	InvalidateList(ctx context.Context)

	GetObjectInfo(ctx context.Context, key string) (*ObjectInfo, bool)
	SetObjectInfo(ctx context.Context, info *ObjectInfo)
}

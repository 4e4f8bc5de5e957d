package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/content"
	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

const (
	listKey       = "content:list"
	metaKeyPrefix = "content:meta:"
)

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

// ContentCache keeps the catalog list for listTTL and object metadata for
// metaTTL. Every failure is logged and treated as a miss.
type ContentCache struct {
	client  *redis.Client
	listTTL time.Duration
	metaTTL time.Duration
}

func NewContentCache(client *redis.Client, listTTL, metaTTL time.Duration) *ContentCache {
	return &ContentCache{
		client:  client,
		listTTL: listTTL,
		metaTTL: metaTTL,
	}
}

func (c *ContentCache) GetList(ctx context.Context) ([]models.Content, bool) {
	var items []models.Content
	if !c.get(ctx, listKey, &items) {
		return nil, false
	}
	return items, true
}

func (c *ContentCache) SetList(ctx context.Context, items []models.Content) {
	c.set(ctx, listKey, items, c.listTTL)
}

func (c *ContentCache) InvalidateList(ctx context.Context) {
	if err := c.client.Del(ctx, listKey).Err(); err != nil {
		zap.L().Warn("cache invalidate failed", zap.String("key", listKey), zap.Error(err))
	}
}

func (c *ContentCache) GetObjectInfo(ctx context.Context, key string) (*domain.ObjectInfo, bool) {
	var info domain.ObjectInfo
	if !c.get(ctx, metaKeyPrefix+key, &info) {
		return nil, false
	}
	return &info, true
}

func (c *ContentCache) SetObjectInfo(ctx context.Context, info *domain.ObjectInfo) {
	c.set(ctx, metaKeyPrefix+info.Key, info, c.metaTTL)
}

func (c *ContentCache) get(ctx context.Context, key string, dst any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.L().Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		zap.L().Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *ContentCache) set(ctx context.Context, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		zap.L().Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Nop is used when no redis is configured.
type Nop struct{}

func (Nop) GetList(context.Context) ([]models.Content, bool) { return nil, false }
func (Nop) SetList(context.Context, []models.Content) {}
func (Nop) InvalidateList(context.Context) {}
func (Nop) GetObjectInfo(context.Context, string) (*domain.ObjectInfo, bool) { return nil, false }
func (Nop) SetObjectInfo(context.Context, *domain.ObjectInfo) {}

var (
	_ domain.Cache = (*ContentCache)(nil)
	_ domain.Cache = Nop{}
)

package content

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/zaban-academy/internal/auth"
	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/content"
	"github.com/BruksfildServices01/zaban-academy/internal/dto"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
)

// ======================================================
// UPLOAD LINK
// ======================================================

// IssueUploadLink hands an admin a presigned PUT for a fresh object key.
// The returned key is later stored on the content as its storage key.
type IssueUploadLink struct {
	store  domain.ObjectStore
	newKey func(fileName string) string
}

func NewIssueUploadLink(
	store domain.ObjectStore,
	newKey func(fileName string) string,
) *IssueUploadLink {
	return &IssueUploadLink{
		store:  store,
		newKey: newKey,
	}
}

func (uc *IssueUploadLink) Execute(
	ctx context.Context,
	fileName string,
	contentType string,
) (*dto.UploadLinkDTO, error) {

	fileName = strings.TrimSpace(fileName)
	contentType = strings.TrimSpace(contentType)
	if fileName == "" || contentType == "" {
		return nil, httperr.ErrBusiness("missing_params")
	}

	if uc.store == nil {
		return nil, httperr.ErrBusiness("storage_unavailable")
	}

	key := uc.newKey(fileName)
	url, expires, err := uc.store.PresignUpload(ctx, key, contentType)
	if err != nil {
		return nil, err
	}

	return &dto.UploadLinkDTO{
		UploadURL: url,
		FileKey:   key,
		ExpiresAt: expires,
	}, nil
}

// ======================================================
// STREAM LINK
// ======================================================

// IssueStreamLink gates media behind the entitlement check and returns
// either the content's external URL or a presigned GET for its object.
type IssueStreamLink struct {
	repo   domain.Repository
	access *CheckAccess
	store  domain.ObjectStore
	cache  domain.Cache
}

func NewIssueStreamLink(
	repo domain.Repository,
	store domain.ObjectStore,
	cache domain.Cache,
) *IssueStreamLink {
	return &IssueStreamLink{
		repo:   repo,
		access: NewCheckAccess(repo),
		store:  store,
		cache:  cache,
	}
}

func (uc *IssueStreamLink) Execute(
	ctx context.Context,
	p *auth.Principal,
	id uint,
) (*dto.StreamLinkDTO, error) {

	c, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ok, err := uc.access.Execute(ctx, p, c)
	if err != nil {
		return nil, err
	}
	if !ok {
		if p == nil {
			return nil, httperr.ErrBusiness("unauthorized")
		}
		return nil, httperr.ErrBusiness("purchase_required")
	}

	if c.StorageKey == "" {
		if c.URL == "" {
			return nil, httperr.ErrBusiness("missing_media_key")
		}
		return &dto.StreamLinkDTO{URL: c.URL}, nil
	}

	if uc.store == nil {
		return nil, httperr.ErrBusiness("storage_unavailable")
	}

	url, expires, err := uc.store.PresignDownload(ctx, c.StorageKey)
	if err != nil {
		return nil, err
	}

	out := &dto.StreamLinkDTO{
		URL:       url,
		ExpiresAt: &expires,
	}
	if info := uc.objectInfo(ctx, c.StorageKey); info != nil {
		out.Size = info.Size
		out.ContentType = info.ContentType
	}
	return out, nil
}

// objectInfo is optional decoration; a failed HeadObject still yields a link.
func (uc *IssueStreamLink) objectInfo(ctx context.Context, key string) *domain.ObjectInfo {
	if uc.cache != nil {
		if info, ok := uc.cache.GetObjectInfo(ctx, key); ok {
			return info
		}
	}

	info, err := uc.store.Stat(ctx, key)
	if err != nil {
		zap.L().Warn("object stat failed", zap.String("key", key), zap.Error(err))
		return nil
	}

	if uc.cache != nil {
		uc.cache.SetObjectInfo(ctx, info)
	}
	return info
}

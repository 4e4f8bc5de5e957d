package content

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/zaban-academy/internal/audit"
	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/content"
	userDomain "github.com/BruksfildServices01/zaban-academy/internal/domain/user"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// ContentInput is used for both create and patch; nil fields are left
// untouched on update and defaulted on create.
type ContentInput struct {
	Title       *string
	Description *string
	Type        *string
	Level       *string
	URL         *string
	StorageKey  *string
	IsPremium   *bool
	Price       *int64
}

func (in ContentInput) apply(c *models.Content) {
	if in.Title != nil {
		c.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		c.Description = strings.TrimSpace(*in.Description)
	}
	if in.Type != nil {
		c.Type = strings.TrimSpace(*in.Type)
	}
	if in.Level != nil {
		c.Level = strings.ToUpper(strings.TrimSpace(*in.Level))
	}
	if in.URL != nil {
		c.URL = strings.TrimSpace(*in.URL)
	}
	if in.StorageKey != nil {
		c.StorageKey = strings.TrimSpace(*in.StorageKey)
	}
	if in.IsPremium != nil {
		c.IsPremium = *in.IsPremium
	}
	if in.Price != nil {
		c.Price = *in.Price
	}
}

func validate(c *models.Content) error {
	if c.Title == "" {
		return httperr.ErrBusiness("missing_title")
	}
	if c.Type == "" {
		c.Type = string(domain.TypeVideo)
	}
	if !domain.ValidType(c.Type) {
		return httperr.ErrBusiness("invalid_type")
	}
	if !userDomain.ValidLevel(c.Level) {
		return httperr.ErrBusiness("invalid_level")
	}
	if c.Price < 0 || (c.IsPremium && c.Price == 0) {
		return httperr.ErrBusiness("invalid_price")
	}
	if !c.IsPremium {
		c.Price = 0
	}
	return nil
}

// ======================================================
// CREATE
// ======================================================

type CreateContent struct {
	repo  domain.Repository
	cache domain.Cache
	audit *audit.Dispatcher
}

func NewCreateContent(
	repo domain.Repository,
	cache domain.Cache,
	audit *audit.Dispatcher,
) *CreateContent {
	return &CreateContent{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CreateContent) Execute(
	ctx context.Context,
	in ContentInput,
	actorID uint,
) (*models.Content, error) {

	c := &models.Content{}
	in.apply(c)
	if err := validate(c); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cache)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "content_created",
		Entity:   "content",
		EntityID: &c.ID,
		Metadata: map[string]any{"title": c.Title, "is_premium": c.IsPremium},
	})

	return c, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateContent struct {
	repo  domain.Repository
	cache domain.Cache
	audit *audit.Dispatcher
}

func NewUpdateContent(
	repo domain.Repository,
	cache domain.Cache,
	audit *audit.Dispatcher,
) *UpdateContent {
	return &UpdateContent{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *UpdateContent) Execute(
	ctx context.Context,
	id uint,
	in ContentInput,
	actorID uint,
) (*models.Content, error) {

	if id == 0 {
		return nil, httperr.ErrBusiness("missing_id")
	}

	c, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in.apply(c)
	if err := validate(c); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cache)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "content_updated",
		Entity:   "content",
		EntityID: &c.ID,
	})

	return c, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteContent struct {
	repo  domain.Repository
	cache domain.Cache
	audit *audit.Dispatcher
}

func NewDeleteContent(
	repo domain.Repository,
	cache domain.Cache,
	audit *audit.Dispatcher,
) *DeleteContent {
	return &DeleteContent{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *DeleteContent) Execute(
	ctx context.Context,
	id uint,
	actorID uint,
) error {

	if id == 0 {
		return httperr.ErrBusiness("missing_id")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, uc.cache)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "content_deleted",
		Entity:   "content",
		EntityID: &id,
	})

	return nil
}

func invalidate(ctx context.Context, cache domain.Cache) {
	if cache != nil {
		cache.InvalidateList(ctx)
	}
}

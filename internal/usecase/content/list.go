package content

import (
	"context"

	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/content"
	"github.com/BruksfildServices01/zaban-academy/internal/dto"
)

type ListContent struct {
	repo  domain.Repository
	cache domain.Cache
}

// NewListContent serves the catalog through cache when one is given.
func NewListContent(
	repo domain.Repository,
	cache domain.Cache,
) *ListContent {
	return &ListContent{
		repo:  repo,
		cache: cache,
	}
}

func (uc *ListContent) Execute(
	ctx context.Context,
) ([]dto.ContentDTO, error) {

	if uc.cache != nil {
		if items, ok := uc.cache.GetList(ctx); ok {
			return dto.ToContentDTOs(items), nil
		}
	}

	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.SetList(ctx, items)
	}
	return dto.ToContentDTOs(items), nil
}

type GetContent struct {
	repo domain.Repository
}

func NewGetContent(
	repo domain.Repository,
) *GetContent {
	return &GetContent{
		repo: repo,
	}
}

func (uc *GetContent) Execute(
	ctx context.Context,
	id uint,
) (*dto.ContentDTO, error) {

	c, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToContentDTO(*c)
	return &out, nil
}

type ListMyPurchases struct {
	repo domain.Repository
}

func NewListMyPurchases(
	repo domain.Repository,
) *ListMyPurchases {
	return &ListMyPurchases{
		repo: repo,
	}
}

func (uc *ListMyPurchases) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.PurchaseDTO, error) {

	purchases, err := uc.repo.ListPurchases(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.ToPurchaseDTOs(purchases), nil
}

package port

import (
	"context"

	"github.com/rafaelleal24/eshop/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type CatalogItemPort interface {
	GetByID(ctx context.Context, id domain.ID) (*domain.CatalogItem, error)
	List(ctx context.Context, spec CatalogItemSpecification) ([]*domain.CatalogItem, error)
	Count(ctx context.Context, spec CatalogItemSpecification) (int, error)
	Add(ctx context.Context, item *domain.CatalogItem) (*domain.CatalogItem, error)
	Delete(ctx context.Context, id domain.ID) error
}

type CatalogBrandPort interface {
	List(ctx context.Context) ([]*domain.CatalogBrand, error)
}

type CatalogTypePort interface {
	List(ctx context.Context) ([]*domain.CatalogType, error)
}

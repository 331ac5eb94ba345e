package port

import (
	"context"

	"github.com/rafaelleal24/eshop/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type BasketPort interface {
	// FirstOrDefault returns nil without error when no basket matches.
	FirstOrDefault(ctx context.Context, spec BasketSpecification) (*domain.Basket, error)
	Add(ctx context.Context, basket *domain.Basket) (*domain.Basket, error)
	Update(ctx context.Context, basket *domain.Basket) error
	Delete(ctx context.Context, id domain.ID) error
}

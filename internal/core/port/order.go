package port

import (
	"context"

	"github.com/rafaelleal24/eshop/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type OrderPort interface {
	Add(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id domain.ID) (*domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID string, limit, offset int64) ([]*domain.Order, error)
}

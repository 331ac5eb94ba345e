package service

import (
	"context"
	"errors"

	"github.com/rafaelleal24/eshop/internal/core/domain"
	"github.com/rafaelleal24/eshop/internal/core/logger"
	"github.com/rafaelleal24/eshop/internal/core/port"
	"github.com/rafaelleal24/eshop/internal/core/serviceerrors"
)

type BasketService struct {
	basketRepository  port.BasketPort
	catalogRepository port.CatalogItemPort
	txManager         port.TransactionManager
}

func NewBasketService(
	basketRepository port.BasketPort,
	catalogRepository port.CatalogItemPort,
	txManager port.TransactionManager,
) *BasketService {
	return &BasketService{
		basketRepository:  basketRepository,
		catalogRepository: catalogRepository,
		txManager:         txManager,
	}
}

func (s *BasketService) GetBasketForBuyer(ctx context.Context, buyerID string) (*domain.Basket, error) {
	basket, err := s.basketRepository.FirstOrDefault(ctx, port.BasketWithItemsForBuyer(buyerID))
	if err != nil {
		return nil, err
	}
	if basket == nil {
		return nil, serviceerrors.NewNotFoundError("basket not found")
	}
	return basket, nil
}

func (s *BasketService) AddItemToBasket(ctx context.Context, buyerID string, catalogItemID domain.ID, quantity int) (*domain.Basket, error) {
	catalogItem, err := s.catalogRepository.GetByID(ctx, catalogItemID)
	if err != nil {
		return nil, err
	}

	basket, err := s.basketRepository.FirstOrDefault(ctx, port.BasketWithItemsForBuyer(buyerID))
	if err != nil {
		return nil, err
	}
	if basket == nil {
		basket, err = s.basketRepository.Add(ctx, domain.NewBasket(buyerID))
		if err != nil {
			return nil, err
		}
		logger.Info(ctx, "Basket created", map[string]any{
			"basket_id": basket.ID,
			"buyer_id":  buyerID,
		})
	}

	if err := basket.AddItem(catalogItem.ID, catalogItem.Price, quantity); err != nil {
		return nil, toBasketError(err)
	}
	if err := s.basketRepository.Update(ctx, basket); err != nil {
		return nil, err
	}
	return basket, nil
}

// SetQuantities updates lines by basket item id. Lines set to zero are removed;
// ids that do not belong to the basket are ignored.
func (s *BasketService) SetQuantities(ctx context.Context, basketID domain.ID, quantities map[domain.ID]int) (*domain.Basket, error) {
	basket, err := s.basketRepository.FirstOrDefault(ctx, port.BasketWithItems(basketID))
	if err != nil {
		return nil, err
	}
	if basket == nil {
		return nil, serviceerrors.NewNotFoundError("basket not found")
	}

	for i := range basket.Items {
		quantity, ok := quantities[basket.Items[i].ID]
		if !ok {
			continue
		}
		if err := basket.Items[i].SetQuantity(quantity); err != nil {
			return nil, toBasketError(err)
		}
	}
	basket.RemoveEmptyItems()

	if err := s.basketRepository.Update(ctx, basket); err != nil {
		return nil, err
	}
	return basket, nil
}

func (s *BasketService) DeleteBasket(ctx context.Context, basketID domain.ID) error {
	return s.basketRepository.Delete(ctx, basketID)
}

// TransferBasket moves an anonymous buyer's lines into userName's basket and
// drops the anonymous basket. Nothing happens when there is no anonymous basket.
func (s *BasketService) TransferBasket(ctx context.Context, anonymousID, userName string) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		anonymous, err := s.basketRepository.FirstOrDefault(txCtx, port.BasketWithItemsForBuyer(anonymousID))
		if err != nil {
			return err
		}
		if anonymous == nil {
			return nil
		}

		userBasket, err := s.basketRepository.FirstOrDefault(txCtx, port.BasketWithItemsForBuyer(userName))
		if err != nil {
			return err
		}
		if userBasket == nil {
			userBasket, err = s.basketRepository.Add(txCtx, domain.NewBasket(userName))
			if err != nil {
				return err
			}
		}

		for _, item := range anonymous.Items {
			if err := userBasket.AddItem(item.CatalogItemID, item.UnitPrice, item.Quantity); err != nil {
				return toBasketError(err)
			}
		}
		if err := s.basketRepository.Update(txCtx, userBasket); err != nil {
			return err
		}
		if err := s.basketRepository.Delete(txCtx, anonymous.ID); err != nil {
			return err
		}

		logger.Info(txCtx, "Basket transferred", map[string]any{
			"from_basket_id": anonymous.ID,
			"to_basket_id":   userBasket.ID,
		})
		return nil
	})
}

func toBasketError(err error) error {
	if errors.Is(err, domain.ErrInvalidQuantity) {
		return serviceerrors.NewInvalidRequestError(err.Error())
	}
	return err
}

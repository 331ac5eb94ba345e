package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelleal24/eshop/internal/core/domain"
	"github.com/rafaelleal24/eshop/internal/core/dto"
	"github.com/rafaelleal24/eshop/internal/core/logger"
	"github.com/rafaelleal24/eshop/internal/core/port"
	"github.com/rafaelleal24/eshop/internal/core/serviceerrors"
)

const (
	orderCacheTTL      = 15 * time.Minute
	defaultOrdersLimit = 20
	maxOrdersLimit     = 100
)

type OrderService struct {
	basketRepository  port.BasketPort
	catalogRepository port.CatalogItemPort
	orderRepository   port.OrderPort
	uriComposer       port.URIComposer
	broker            port.BrokerPort
	orderCache        port.CachePort[domain.Order]
	idempotency       *IdempotencyService[domain.Order]
}

func NewOrderService(
	basketRepository port.BasketPort,
	catalogRepository port.CatalogItemPort,
	orderRepository port.OrderPort,
	uriComposer port.URIComposer,
	broker port.BrokerPort,
	orderCache port.CachePort[domain.Order],
	idempotency *IdempotencyService[domain.Order],
) *OrderService {
	return &OrderService{
		basketRepository:  basketRepository,
		catalogRepository: catalogRepository,
		orderRepository:   orderRepository,
		uriComposer:       uriComposer,
		broker:            broker,
		orderCache:        orderCache,
		idempotency:       idempotency,
	}
}

func (s *OrderService) getCacheKey(orderID domain.ID) string {
	return fmt.Sprintf("order:%s", orderID)
}

// CreateOrder checks out a basket. When the order was stored but the
// notification could not be published, the stored order is returned together
// with a transport error.
func (s *OrderService) CreateOrder(ctx context.Context, idempotencyKey string, request *dto.CreateOrderRequest) (*domain.Order, error) {
	return s.idempotency.Run(ctx, idempotencyKey, request, func(ctx context.Context) (*domain.Order, error) {
		return s.processOrder(ctx, request.BasketID, request.ShippingAddress)
	})
}

func (s *OrderService) processOrder(ctx context.Context, basketID domain.ID, address domain.Address) (*domain.Order, error) {
	basket, err := s.basketRepository.FirstOrDefault(ctx, port.BasketWithItems(basketID))
	if err != nil {
		return nil, err
	}
	if basket == nil {
		return nil, serviceerrors.NewNotFoundError("basket not found")
	}
	if basket.IsEmpty() {
		return nil, serviceerrors.NewInvalidOperationError("cannot checkout an empty basket")
	}

	items, err := s.buildOrderItems(ctx, basket)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepository.Add(ctx, domain.NewOrder(basket.BuyerID, address, items))
	if err != nil {
		logger.Error(ctx, "order: persist failed", err, map[string]any{
			"basket_id": basketID,
		})
		return nil, err
	}
	if order == nil {
		return nil, nil
	}

	logger.Info(ctx, "Order created successfully", map[string]any{
		"order_id":  order.ID,
		"basket_id": basketID,
		"items":     len(order.OrderItems),
	})

	if err := s.broker.Publish(ctx, domain.NewOrderCreatedEvent(order)); err != nil {
		logger.Error(ctx, "order: publish failed", err, map[string]any{
			"order_id": order.ID,
		})
		return order, serviceerrors.NewTransportError("order created but notification could not be published", err)
	}

	return order, nil
}

func (s *OrderService) buildOrderItems(ctx context.Context, basket *domain.Basket) ([]domain.OrderItem, error) {
	catalogItems, err := s.catalogRepository.List(ctx, port.CatalogItemsByIDs(basket.CatalogItemIDs()...))
	if err != nil {
		return nil, err
	}

	byID := make(map[domain.ID]*domain.CatalogItem, len(catalogItems))
	for _, item := range catalogItems {
		byID[item.ID] = item
	}

	items := make([]domain.OrderItem, 0, len(basket.Items))
	for _, basketItem := range basket.Items {
		catalogItem, ok := byID[basketItem.CatalogItemID]
		if !ok {
			logger.Error(ctx, "order: basket references a missing catalog item", nil, map[string]any{
				"basket_id":       basket.ID,
				"catalog_item_id": basketItem.CatalogItemID,
			})
			return nil, serviceerrors.NewDataIntegrityError(
				fmt.Sprintf("catalog item %s referenced by basket %s does not exist", basketItem.CatalogItemID, basket.ID))
		}

		ordered := domain.NewCatalogItemOrdered(
			catalogItem.ID,
			catalogItem.Name,
			s.uriComposer.ComposePicURI(catalogItem.PictureURI),
		)
		items = append(items, domain.NewOrderItem(ordered, basketItem.UnitPrice, basketItem.Quantity))
	}
	return items, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, orderID domain.ID) (*domain.Order, error) {
	cached, err := s.orderCache.Get(ctx, s.getCacheKey(orderID))
	if err != nil {
		logger.Error(ctx, "cache: get order failed", err, map[string]any{
			"order_id": orderID,
		})
	}
	if cached != nil {
		return cached, nil
	}

	order, err := s.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.orderCache.Set(ctx, s.getCacheKey(orderID), order, orderCacheTTL); err != nil {
		logger.Error(ctx, "cache: set order failed", err, map[string]any{
			"order_id": orderID,
		})
	}

	return order, nil
}

func (s *OrderService) ListOrdersForBuyer(ctx context.Context, buyerID string, limit, offset int64) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = defaultOrdersLimit
	}
	if limit > maxOrdersLimit {
		limit = maxOrdersLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.orderRepository.ListByBuyer(ctx, buyerID, limit, offset)
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rafaelleal24/eshop/internal/core/domain"
	"github.com/rafaelleal24/eshop/internal/core/dto"
	"github.com/rafaelleal24/eshop/internal/core/port"
	"github.com/rafaelleal24/eshop/internal/core/port/mock"
	"github.com/rafaelleal24/eshop/internal/core/serviceerrors"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type orderMocks struct {
	basketRepo  *mock.MockBasketPort
	catalogRepo *mock.MockCatalogItemPort
	orderRepo   *mock.MockOrderPort
	uriComposer *mock.MockURIComposer
	broker      *mock.MockBrokerPort
	orderCache  *mock.MockCachePort[domain.Order]
	idemCache   *mock.MockCachePort[IdempotencyEntry[domain.Order]]
}

func setupOrderService(t *testing.T) (*OrderService, *orderMocks) {
	ctrl := gomock.NewController(t)

	m := &orderMocks{
		basketRepo:  mock.NewMockBasketPort(ctrl),
		catalogRepo: mock.NewMockCatalogItemPort(ctrl),
		orderRepo:   mock.NewMockOrderPort(ctrl),
		uriComposer: mock.NewMockURIComposer(ctrl),
		broker:      mock.NewMockBrokerPort(ctrl),
		orderCache:  mock.NewMockCachePort[domain.Order](ctrl),
		idemCache:   mock.NewMockCachePort[IdempotencyEntry[domain.Order]](ctrl),
	}
	idemSvc := NewIdempotencyService[domain.Order](m.idemCache, 15*time.Minute, 10*time.Millisecond, 100*time.Millisecond)

	svc := NewOrderService(m.basketRepo, m.catalogRepo, m.orderRepo, m.uriComposer, m.broker, m.orderCache, idemSvc)
	return svc, m
}

var shipTo = domain.Address{
	Street:  "123 Main St.",
	City:    "Kent",
	State:   "OH",
	Country: "United States",
	ZipCode: "44240",
}

func basketFixture() *domain.Basket {
	return &domain.Basket{
		ID:      42,
		BuyerID: "buyer@example.com",
		Items: []domain.BasketItem{
			{ID: 1, CatalogItemID: 1, UnitPrice: decimal.RequireFromString("19.50"), Quantity: 2},
			{ID: 2, CatalogItemID: 2, UnitPrice: decimal.RequireFromString("8.50"), Quantity: 3},
		},
	}
}

func catalogFixture() []*domain.CatalogItem {
	return []*domain.CatalogItem{
		{ID: 1, Name: ".NET Bot Black Sweatshirt", PictureURI: "http://catalogbaseurltobereplaced/images/products/1.png", Price: decimal.RequireFromString("19.50")},
		{ID: 2, Name: ".NET Black & White Mug", PictureURI: "http://catalogbaseurltobereplaced/images/products/2.png", Price: decimal.RequireFromString("8.50")},
	}
}

func composeForTest(raw string) string {
	return "https://cdn.example.com" + raw[len("http://catalogbaseurltobereplaced"):]
}

func persistAs(id domain.ID) func(context.Context, *domain.Order) (*domain.Order, error) {
	return func(_ context.Context, order *domain.Order) (*domain.Order, error) {
		persisted := *order
		persisted.ID = id
		return &persisted, nil
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	request := &dto.CreateOrderRequest{BasketID: 42, ShippingAddress: shipTo}

	t.Run("snapshots every basket item and publishes once", func(t *testing.T) {
		svc, m := setupOrderService(t)

		m.basketRepo.EXPECT().
			FirstOrDefault(gomock.Any(), port.BasketWithItems(42)).
			Return(basketFixture(), nil)
		m.catalogRepo.EXPECT().
			List(gomock.Any(), port.CatalogItemsByIDs(1, 2)).
			Return(catalogFixture(), nil)
		m.uriComposer.EXPECT().ComposePicURI(gomock.Any()).DoAndReturn(composeForTest).Times(2)

		var stored *domain.Order
		m.orderRepo.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, order *domain.Order) (*domain.Order, error) {
				stored = order
				return persistAs(7)(ctx, order)
			})
		m.broker.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event domain.Event) error {
				created, ok := event.(*domain.OrderCreatedEvent)
				if !ok {
					t.Fatalf("expected *domain.OrderCreatedEvent, got %T", event)
				}
				if created.OrderID != 7 {
					t.Fatalf("expected event for order 7, got %d", created.OrderID)
				}
				if !created.Total.Equal(decimal.RequireFromString("64.50")) {
					t.Fatalf("expected total 64.50, got %s", created.Total)
				}
				return nil
			})

		order, err := svc.CreateOrder(context.Background(), "", request)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if order.ID != 7 {
			t.Fatalf("expected persisted id 7, got %d", order.ID)
		}
		if stored.BuyerID != "buyer@example.com" {
			t.Fatalf("expected buyer from basket, got %q", stored.BuyerID)
		}
		if stored.ShipToAddress != shipTo {
			t.Fatalf("expected ship-to %+v, got %+v", shipTo, stored.ShipToAddress)
		}
		if len(stored.OrderItems) != 2 {
			t.Fatalf("expected 2 order items, got %d", len(stored.OrderItems))
		}

		wantUnits := []int{2, 3}
		wantPrices := []string{"19.5", "8.5"}
		catalog := catalogFixture()
		for i, item := range stored.OrderItems {
			if item.Units != wantUnits[i] {
				t.Fatalf("item %d: expected %d units, got %d", i, wantUnits[i], item.Units)
			}
			if item.UnitPrice.String() != wantPrices[i] {
				t.Fatalf("item %d: expected price %s, got %s", i, wantPrices[i], item.UnitPrice)
			}
			if item.ItemOrdered.ProductName != catalog[i].Name {
				t.Fatalf("item %d: expected name %q, got %q", i, catalog[i].Name, item.ItemOrdered.ProductName)
			}
			if item.ItemOrdered.PictureURI != composeForTest(catalog[i].PictureURI) {
				t.Fatalf("item %d: expected composed picture, got %q", i, item.ItemOrdered.PictureURI)
			}
		}
	})

	t.Run("basket price wins over current catalog price", func(t *testing.T) {
		svc, m := setupOrderService(t)
		catalog := catalogFixture()
		catalog[0].Price = decimal.RequireFromString("99.99")

		m.basketRepo.EXPECT().FirstOrDefault(gomock.Any(), gomock.Any()).Return(basketFixture(), nil)
		m.catalogRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(catalog, nil)
		m.uriComposer.EXPECT().ComposePicURI(gomock.Any()).DoAndReturn(composeForTest).Times(2)
		m.orderRepo.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(persistAs(8))
		m.broker.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		order, err := svc.CreateOrder(context.Background(), "", request)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !order.OrderItems[0].UnitPrice.Equal(decimal.RequireFromString("19.50")) {
			t.Fatalf("expected basket price 19.50, got %s", order.OrderItems[0].UnitPrice)
		}
	})

	t.Run("basket not found", func(t *testing.T) {
		svc, m := setupOrderService(t)
		m.basketRepo.EXPECT().FirstOrDefault(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := svc.CreateOrder(context.Background(), "", request)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("empty basket never persists or publishes", func(t *testing.T) {
		svc, m := setupOrderService(t)
		m.basketRepo.EXPECT().
			FirstOrDefault(gomock.Any(), gomock.Any()).
			Return(&domain.Basket{ID: 42, BuyerID: "buyer", Items: []domain.BasketItem{}}, nil)
		m.orderRepo.EXPECT().Add(gomock.Any(), gomock.Any()).Times(0)
		m.broker.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.CreateOrder(context.Background(), "", request)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidOperation) {
			t.Fatalf("expected KindInvalidOperation, got %v", err)
		}
	})

	t.Run("missing catalog item is an integrity fault", func(t *testing.T) {
		svc, m := setupOrderService(t)
		m.basketRepo.EXPECT().FirstOrDefault(gomock.Any(), gomock.Any()).Return(basketFixture(), nil)
		m.catalogRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(catalogFixture()[:1], nil)
		m.uriComposer.EXPECT().ComposePicURI(gomock.Any()).DoAndReturn(composeForTest).AnyTimes()
		m.orderRepo.EXPECT().Add(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.CreateOrder(context.Background(), "", request)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindDataIntegrity) {
			t.Fatalf("expected KindDataIntegrity, got %v", err)
		}
	})

	t.Run("repository failure propagates unchanged", func(t *testing.T) {
		svc, m := setupOrderService(t)
		dbErr := errors.New("connection reset")
		m.basketRepo.EXPECT().FirstOrDefault(gomock.Any(), gomock.Any()).Return(nil, dbErr)

		_, err := svc.CreateOrder(context.Background(), "", request)
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected %v, got %v", dbErr, err)
		}
	})

	t.Run("nil persisted order skips publish", func(t *testing.T) {
		svc, m := setupOrderService(t)
		m.basketRepo.EXPECT().FirstOrDefault(gomock.Any(), gomock.Any()).Return(basketFixture(), nil)
		m.catalogRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(catalogFixture(), nil)
		m.uriComposer.EXPECT().ComposePicURI(gomock.Any()).DoAndReturn(composeForTest).Times(2)
		m.orderRepo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.broker.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

		order, err := svc.CreateOrder(context.Background(), "", request)
		if err != nil || order != nil {
			t.Fatalf("expected nil order and nil error, got %+v, %v", order, err)
		}
	})

	t.Run("publish failure keeps the persisted order", func(t *testing.T) {
		svc, m := setupOrderService(t)
		brokerErr := errors.New("connection refused")

		m.basketRepo.EXPECT().FirstOrDefault(gomock.Any(), gomock.Any()).Return(basketFixture(), nil)
		m.catalogRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(catalogFixture(), nil)
		m.uriComposer.EXPECT().ComposePicURI(gomock.Any()).DoAndReturn(composeForTest).Times(2)
		m.orderRepo.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(persistAs(9)).Times(1)
		m.broker.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(brokerErr)

		order, err := svc.CreateOrder(context.Background(), "", request)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindTransport) {
			t.Fatalf("expected KindTransport, got %v", err)
		}
		if !errors.Is(err, brokerErr) {
			t.Fatalf("expected cause %v to be wrapped, got %v", brokerErr, err)
		}
		if order == nil || order.ID != 9 {
			t.Fatalf("expected persisted order 9, got %+v", order)
		}
	})

	t.Run("idempotent replay returns the stored order", func(t *testing.T) {
		svc, m := setupOrderService(t)
		stored := &domain.Order{ID: 11, BuyerID: "buyer@example.com"}

		m.idemCache.EXPECT().SetNX(gomock.Any(), "key-1", gomock.Any(), 15*time.Minute).Return(false, nil)
		m.idemCache.EXPECT().Get(gomock.Any(), "key-1").Return(&IdempotencyEntry[domain.Order]{
			Status:      IdempotencyCompleted,
			PayloadHash: HashPayload(request),
			Result:      stored,
		}, nil)

		order, err := svc.CreateOrder(context.Background(), "key-1", request)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if order.ID != 11 {
			t.Fatalf("expected stored order 11, got %d", order.ID)
		}
	})

	t.Run("failed publish is not retried on replay", func(t *testing.T) {
		svc, m := setupOrderService(t)

		m.idemCache.EXPECT().SetNX(gomock.Any(), "key-2", gomock.Any(), 15*time.Minute).Return(true, nil)
		m.basketRepo.EXPECT().FirstOrDefault(gomock.Any(), gomock.Any()).Return(basketFixture(), nil)
		m.catalogRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(catalogFixture(), nil)
		m.uriComposer.EXPECT().ComposePicURI(gomock.Any()).DoAndReturn(composeForTest).Times(2)
		m.orderRepo.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(persistAs(12))
		m.broker.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
		m.idemCache.EXPECT().
			Set(gomock.Any(), "key-2", gomock.Any(), 15*time.Minute).
			DoAndReturn(func(_ context.Context, _ string, entry *IdempotencyEntry[domain.Order], _ time.Duration) error {
				if entry.Status != IdempotencyCompleted || entry.Result.ID != 12 {
					t.Fatalf("expected completed entry for order 12, got %+v", entry)
				}
				return nil
			})

		_, err := svc.CreateOrder(context.Background(), "key-2", request)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindTransport) {
			t.Fatalf("expected KindTransport, got %v", err)
		}
	})

	t.Run("guard failure releases the idempotency key", func(t *testing.T) {
		svc, m := setupOrderService(t)

		m.idemCache.EXPECT().SetNX(gomock.Any(), "key-3", gomock.Any(), 15*time.Minute).Return(true, nil)
		m.basketRepo.EXPECT().FirstOrDefault(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.idemCache.EXPECT().Del(gomock.Any(), "key-3").Return(nil)

		_, err := svc.CreateOrder(context.Background(), "key-3", request)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestOrderService_GetOrderByID(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		svc, m := setupOrderService(t)
		m.orderCache.EXPECT().Get(gomock.Any(), "order:5").Return(&domain.Order{ID: 5}, nil)

		order, err := svc.GetOrderByID(context.Background(), 5)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if order.ID != 5 {
			t.Fatalf("expected order 5, got %d", order.ID)
		}
	})

	t.Run("cache miss fills the cache", func(t *testing.T) {
		svc, m := setupOrderService(t)
		repoOrder := &domain.Order{ID: 5}

		m.orderCache.EXPECT().Get(gomock.Any(), "order:5").Return(nil, nil)
		m.orderRepo.EXPECT().GetByID(gomock.Any(), domain.ID(5)).Return(repoOrder, nil)
		m.orderCache.EXPECT().Set(gomock.Any(), "order:5", repoOrder, orderCacheTTL).Return(nil)

		if _, err := svc.GetOrderByID(context.Background(), 5); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("cache errors are ignored", func(t *testing.T) {
		svc, m := setupOrderService(t)

		m.orderCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis error"))
		m.orderRepo.EXPECT().GetByID(gomock.Any(), domain.ID(5)).Return(&domain.Order{ID: 5}, nil)
		m.orderCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis error"))

		order, err := svc.GetOrderByID(context.Background(), 5)
		if err != nil || order == nil {
			t.Fatalf("expected order, got %+v, %v", order, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := setupOrderService(t)

		m.orderCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.orderRepo.EXPECT().GetByID(gomock.Any(), domain.ID(5)).Return(nil, serviceerrors.NewNotFoundError("order not found"))

		_, err := svc.GetOrderByID(context.Background(), 5)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestOrderService_ListOrdersForBuyer(t *testing.T) {
	tests := []struct {
		name          string
		limit, offset int64
		wantLimit     int64
		wantOffset    int64
	}{
		{name: "defaults", limit: 0, offset: -3, wantLimit: defaultOrdersLimit, wantOffset: 0},
		{name: "caps limit", limit: 1000, offset: 10, wantLimit: maxOrdersLimit, wantOffset: 10},
		{name: "passes through", limit: 5, offset: 2, wantLimit: 5, wantOffset: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := setupOrderService(t)
			m.orderRepo.EXPECT().
				ListByBuyer(gomock.Any(), "buyer", tc.wantLimit, tc.wantOffset).
				Return([]*domain.Order{}, nil)

			if _, err := svc.ListOrdersForBuyer(context.Background(), "buyer", tc.limit, tc.offset); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/rafaelleal24/eshop/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/eshop/internal/core/domain"
	"github.com/rafaelleal24/eshop/internal/core/serviceerrors"
	"github.com/shopspring/decimal"
)

func newTestOrder(buyerID string) *domain.Order {
	items := []domain.OrderItem{
		domain.NewOrderItem(domain.NewCatalogItemOrdered(1, ".NET Bot Black Sweatshirt", "https://cdn/1.png"), decimal.RequireFromString("19.5"), 2),
		domain.NewOrderItem(domain.NewCatalogItemOrdered(2, ".NET Black & White Mug", "https://cdn/2.png"), decimal.RequireFromString("8.5"), 3),
	}
	return domain.NewOrder(buyerID, domain.Address{Street: "1 Main", City: "Kent", ZipCode: "44240"}, items)
}

func setupOrders(t *testing.T) *repository.OrderRepository {
	t.Helper()
	clearCollections(t, repository.OrdersCollection)
	return repository.NewOrderRepository(testDB, repository.NewSequence(testDB))
}

func TestOrderRepository_Add(t *testing.T) {
	repo := setupOrders(t)
	ctx := context.Background()

	t.Run("assigns ids and keeps the argument untouched", func(t *testing.T) {
		order := newTestOrder("buyer-1")

		persisted, err := repo.Add(ctx, order)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if persisted.ID == 0 {
			t.Fatal("expected order id to be assigned")
		}
		if order.ID != 0 {
			t.Fatal("expected input order to keep a zero id")
		}
		if persisted.OrderItems[0].ID == 0 || persisted.OrderItems[1].ID != persisted.OrderItems[0].ID+1 {
			t.Fatalf("expected consecutive item ids, got %+v", persisted.OrderItems)
		}
	})

	t.Run("rejects an existing id", func(t *testing.T) {
		order := newTestOrder("buyer-1")
		order.ID = 99

		if _, err := repo.Add(ctx, order); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestOrderRepository_GetByID(t *testing.T) {
	repo := setupOrders(t)
	ctx := context.Background()

	persisted, err := repo.Add(ctx, newTestOrder("buyer-2"))
	if err != nil {
		t.Fatalf("setup: add order failed: %v", err)
	}

	found, err := repo.GetByID(ctx, persisted.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found.BuyerID != "buyer-2" || found.ShipToAddress.City != "Kent" {
		t.Fatalf("unexpected order %+v", found)
	}
	if !found.Total().Equal(decimal.RequireFromString("64.5")) {
		t.Fatalf("expected total 64.5, got %s", found.Total())
	}
	if found.OrderItems[1].ItemOrdered.ProductName != ".NET Black & White Mug" {
		t.Fatalf("unexpected snapshot %+v", found.OrderItems[1].ItemOrdered)
	}
	if !found.OrderDate.Equal(persisted.OrderDate) {
		t.Fatalf("expected order date %s, got %s", persisted.OrderDate, found.OrderDate)
	}

	_, err = repo.GetByID(ctx, persisted.ID+1000)
	if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestOrderRepository_ListByBuyer(t *testing.T) {
	repo := setupOrders(t)
	ctx := context.Background()

	var ids []domain.ID
	for i := 0; i < 3; i++ {
		order := newTestOrder("buyer-3")
		order.OrderDate = time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC)
		persisted, err := repo.Add(ctx, order)
		if err != nil {
			t.Fatalf("setup: add order failed: %v", err)
		}
		ids = append(ids, persisted.ID)
	}
	if _, err := repo.Add(ctx, newTestOrder("someone-else")); err != nil {
		t.Fatalf("setup: add order failed: %v", err)
	}

	orders, err := repo.ListByBuyer(ctx, "buyer-3", 2, 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != ids[2] || orders[1].ID != ids[1] {
		t.Fatalf("expected newest first, got %d, %d", orders[0].ID, orders[1].ID)
	}

	rest, _ := repo.ListByBuyer(ctx, "buyer-3", 2, 2)
	if len(rest) != 1 || rest[0].ID != ids[0] {
		t.Fatalf("expected oldest order on second page, got %+v", rest)
	}
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rafaelleal24/eshop/internal/adapters/mongo/document"
	"github.com/rafaelleal24/eshop/internal/core/domain"
	"github.com/rafaelleal24/eshop/internal/core/logger"
	"github.com/rafaelleal24/eshop/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	OrdersCollection = "orders"
	orderItemsSeq    = "order_items"
)

type OrderRepository struct {
	*BaseRepository[document.OrderDocument]
	collection *mongo.Collection
	sequence   *Sequence
}

func NewOrderRepository(db *mongo.Database, sequence *Sequence) *OrderRepository {
	repo := &OrderRepository{
		BaseRepository: NewBaseRepository[document.OrderDocument](db, OrdersCollection, "order"),
		collection:     db.Collection(OrdersCollection),
		sequence:       sequence,
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": OrdersCollection,
		})
	}

	return repo
}

var _ port.OrderPort = (*OrderRepository)(nil)

func (r *OrderRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "buyer_id", Value: 1},
				{Key: "order_date", Value: -1},
			},
		},
		{
			Keys: bson.D{{Key: "order_date", Value: -1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// Add stores a new order and returns the stored copy with its ids assigned.
// The argument is left untouched.
func (r *OrderRepository) Add(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order.ID != 0 {
		return nil, errors.New("cannot create order with existing ID")
	}

	id, err := r.sequence.Next(ctx, OrdersCollection)
	if err != nil {
		return nil, err
	}

	doc := document.ToOrderDocument(order)
	doc.ID = id
	doc.OrderDate = doc.OrderDate.Truncate(time.Millisecond)

	if len(doc.Items) > 0 {
		next, err := r.sequence.NextN(ctx, orderItemsSeq, len(doc.Items))
		if err != nil {
			return nil, err
		}
		for i := range doc.Items {
			doc.Items[i].ID = next + i
		}
	}

	if err := r.Insert(ctx, doc); err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Order, error) {
	doc, err := r.FindByID(ctx, int(id))
	if err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}

func (r *OrderRepository) ListByBuyer(ctx context.Context, buyerID string, limit, offset int64) ([]*domain.Order, error) {
	opts := options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.D{{Key: "order_date", Value: -1}, {Key: "_id", Value: -1}})

	docs, err := r.Find(ctx, bson.M{"buyer_id": buyerID}, opts)
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(docs))
	for i := range docs {
		orders[i] = docs[i].ToDomain()
	}
	return orders, nil
}

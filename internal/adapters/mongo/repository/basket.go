package repository

import (
	"context"

	"github.com/rafaelleal24/eshop/internal/adapters/mongo/document"
	"github.com/rafaelleal24/eshop/internal/core/domain"
	"github.com/rafaelleal24/eshop/internal/core/logger"
	"github.com/rafaelleal24/eshop/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	BasketsCollection = "baskets"
	basketItemsSeq    = "basket_items"
)

type BasketRepository struct {
	*BaseRepository[document.BasketDocument]
	collection *mongo.Collection
	sequence   *Sequence
}

func NewBasketRepository(db *mongo.Database, sequence *Sequence) *BasketRepository {
	repo := &BasketRepository{
		BaseRepository: NewBaseRepository[document.BasketDocument](db, BasketsCollection, "basket"),
		collection:     db.Collection(BasketsCollection),
		sequence:       sequence,
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": BasketsCollection,
		})
	}

	return repo
}

var _ port.BasketPort = (*BasketRepository)(nil)

func (r *BasketRepository) createIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "buyer_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *BasketRepository) FirstOrDefault(ctx context.Context, spec port.BasketSpecification) (*domain.Basket, error) {
	filter := bson.M{}
	if spec.BasketID != 0 {
		filter["_id"] = int(spec.BasketID)
	}
	if spec.BuyerID != "" {
		filter["buyer_id"] = spec.BuyerID
	}

	doc, err := r.FindFirst(ctx, filter)
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}

func (r *BasketRepository) Add(ctx context.Context, basket *domain.Basket) (*domain.Basket, error) {
	id, err := r.sequence.Next(ctx, BasketsCollection)
	if err != nil {
		return nil, err
	}
	basket.ID = domain.ID(id)

	if err := r.assignItemIDs(ctx, basket); err != nil {
		return nil, err
	}
	if err := r.Insert(ctx, document.ToBasketDocument(basket)); err != nil {
		return nil, err
	}
	return basket, nil
}

func (r *BasketRepository) Update(ctx context.Context, basket *domain.Basket) error {
	if err := r.assignItemIDs(ctx, basket); err != nil {
		return err
	}
	return r.Replace(ctx, document.ToBasketDocument(basket))
}

func (r *BasketRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.DeleteByID(ctx, int(id))
}

func (r *BasketRepository) assignItemIDs(ctx context.Context, basket *domain.Basket) error {
	missing := 0
	for _, item := range basket.Items {
		if item.ID == 0 {
			missing++
		}
	}
	if missing == 0 {
		return nil
	}

	next, err := r.sequence.NextN(ctx, basketItemsSeq, missing)
	if err != nil {
		return err
	}
	for i := range basket.Items {
		if basket.Items[i].ID == 0 {
			basket.Items[i].ID = domain.ID(next)
			next++
		}
	}
	return nil
}

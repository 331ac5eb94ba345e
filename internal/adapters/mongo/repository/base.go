package repository

import (
	"context"
	"errors"

	"github.com/rafaelleal24/eshop/internal/adapters/mongo/document"
	"github.com/rafaelleal24/eshop/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BaseRepository[T document.Document] struct {
	collection *mongo.Collection
	notFound   string
}

func NewBaseRepository[T document.Document](db *mongo.Database, collectionName, entityName string) *BaseRepository[T] {
	return &BaseRepository[T]{
		collection: db.Collection(collectionName),
		notFound:   entityName + " not found",
	}
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id int) (*T, error) {
	var entity T
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if err != nil {
		return nil, r.parseError(err)
	}

	return &entity, nil
}

func (r *BaseRepository[T]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, r.parseError(err)
	}
	defer cursor.Close(ctx)

	entities := []T{}
	if err = cursor.All(ctx, &entities); err != nil {
		return nil, r.parseError(err)
	}

	return entities, nil
}

// FindFirst returns nil without error when nothing matches.
func (r *BaseRepository[T]) FindFirst(ctx context.Context, filter bson.M) (*T, error) {
	var entity T
	err := r.collection.FindOne(ctx, filter).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, r.parseError(err)
	}

	return &entity, nil
}

func (r *BaseRepository[T]) Count(ctx context.Context, filter bson.M) (int, error) {
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, r.parseError(err)
	}
	return int(count), nil
}

func (r *BaseRepository[T]) Insert(ctx context.Context, entity *T) error {
	if _, err := r.collection.InsertOne(ctx, entity); err != nil {
		return r.parseError(err)
	}
	return nil
}

func (r *BaseRepository[T]) Replace(ctx context.Context, entity *T) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": (*entity).GetID()}, entity)
	if err != nil {
		return r.parseError(err)
	}

	if result.MatchedCount == 0 {
		return serviceerrors.NewNotFoundError(r.notFound)
	}

	return nil
}

func (r *BaseRepository[T]) DeleteByID(ctx context.Context, id int) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return r.parseError(err)
	}

	if result.DeletedCount == 0 {
		return serviceerrors.NewNotFoundError(r.notFound)
	}

	return nil
}

func (r *BaseRepository[T]) parseError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return serviceerrors.NewNotFoundError(r.notFound)
	}
	if mongo.IsDuplicateKeyError(err) {
		return serviceerrors.NewConflictError("duplicate key error")
	}
	return err
}

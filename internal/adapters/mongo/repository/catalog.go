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
	CatalogItemsCollection  = "catalog_items"
	CatalogBrandsCollection = "catalog_brands"
	CatalogTypesCollection  = "catalog_types"
)

var sortByID = bson.D{{Key: "_id", Value: 1}}

type CatalogItemRepository struct {
	*BaseRepository[document.CatalogItemDocument]
	collection *mongo.Collection
	sequence   *Sequence
}

func NewCatalogItemRepository(db *mongo.Database, sequence *Sequence) *CatalogItemRepository {
	repo := &CatalogItemRepository{
		BaseRepository: NewBaseRepository[document.CatalogItemDocument](db, CatalogItemsCollection, "catalog item"),
		collection:     db.Collection(CatalogItemsCollection),
		sequence:       sequence,
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": CatalogItemsCollection,
		})
	}

	return repo
}

var _ port.CatalogItemPort = (*CatalogItemRepository)(nil)

func (r *CatalogItemRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "catalog_brand_id", Value: 1},
				{Key: "catalog_type_id", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "catalog_type_id", Value: 1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func catalogFilter(spec port.CatalogItemSpecification) bson.M {
	filter := bson.M{}
	if spec.ByIDs || len(spec.IDs) > 0 {
		ids := make([]int, len(spec.IDs))
		for i, id := range spec.IDs {
			ids[i] = int(id)
		}
		filter["_id"] = bson.M{"$in": ids}
	}
	if spec.BrandID != nil {
		filter["catalog_brand_id"] = int(*spec.BrandID)
	}
	if spec.TypeID != nil {
		filter["catalog_type_id"] = int(*spec.TypeID)
	}
	if spec.Name != "" {
		filter["name"] = spec.Name
	}
	return filter
}

func (r *CatalogItemRepository) GetByID(ctx context.Context, id domain.ID) (*domain.CatalogItem, error) {
	doc, err := r.FindByID(ctx, int(id))
	if err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}

func (r *CatalogItemRepository) List(ctx context.Context, spec port.CatalogItemSpecification) ([]*domain.CatalogItem, error) {
	opts := options.Find().SetSort(sortByID)
	if spec.Skip > 0 {
		opts.SetSkip(int64(spec.Skip))
	}
	if spec.Take > 0 {
		opts.SetLimit(int64(spec.Take))
	}

	docs, err := r.Find(ctx, catalogFilter(spec), opts)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.CatalogItem, len(docs))
	for i := range docs {
		items[i] = docs[i].ToDomain()
	}
	return items, nil
}

func (r *CatalogItemRepository) Count(ctx context.Context, spec port.CatalogItemSpecification) (int, error) {
	return r.BaseRepository.Count(ctx, catalogFilter(spec))
}

func (r *CatalogItemRepository) Add(ctx context.Context, item *domain.CatalogItem) (*domain.CatalogItem, error) {
	id, err := r.sequence.Next(ctx, CatalogItemsCollection)
	if err != nil {
		return nil, err
	}

	doc := document.ToCatalogItemDocument(item)
	doc.ID = id
	if err := r.Insert(ctx, doc); err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}

func (r *CatalogItemRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.DeleteByID(ctx, int(id))
}

type CatalogBrandRepository struct {
	*BaseRepository[document.CatalogBrandDocument]
}

func NewCatalogBrandRepository(db *mongo.Database) *CatalogBrandRepository {
	return &CatalogBrandRepository{
		BaseRepository: NewBaseRepository[document.CatalogBrandDocument](db, CatalogBrandsCollection, "catalog brand"),
	}
}

var _ port.CatalogBrandPort = (*CatalogBrandRepository)(nil)

func (r *CatalogBrandRepository) List(ctx context.Context) ([]*domain.CatalogBrand, error) {
	docs, err := r.Find(ctx, bson.M{}, options.Find().SetSort(sortByID))
	if err != nil {
		return nil, err
	}

	brands := make([]*domain.CatalogBrand, len(docs))
	for i := range docs {
		brands[i] = docs[i].ToDomain()
	}
	return brands, nil
}

type CatalogTypeRepository struct {
	*BaseRepository[document.CatalogTypeDocument]
}

func NewCatalogTypeRepository(db *mongo.Database) *CatalogTypeRepository {
	return &CatalogTypeRepository{
		BaseRepository: NewBaseRepository[document.CatalogTypeDocument](db, CatalogTypesCollection, "catalog type"),
	}
}

var _ port.CatalogTypePort = (*CatalogTypeRepository)(nil)

func (r *CatalogTypeRepository) List(ctx context.Context) ([]*domain.CatalogType, error) {
	docs, err := r.Find(ctx, bson.M{}, options.Find().SetSort(sortByID))
	if err != nil {
		return nil, err
	}

	types := make([]*domain.CatalogType, len(docs))
	for i := range docs {
		types[i] = docs[i].ToDomain()
	}
	return types, nil
}

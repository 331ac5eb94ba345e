package mongo

import (
	"context"
	"fmt"

	"github.com/rafaelleal24/eshop/internal/adapters/mongo/document"
	"github.com/rafaelleal24/eshop/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/eshop/internal/core/domain"
	"github.com/rafaelleal24/eshop/internal/core/logger"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const pictureBase = "http://catalogbaseurltobereplaced/images/products/"

var seedBrands = []document.CatalogBrandDocument{
	{ID: 1, Brand: "Azure"},
	{ID: 2, Brand: ".NET"},
	{ID: 3, Brand: "Visual Studio"},
	{ID: 4, Brand: "SQL Server"},
	{ID: 5, Brand: "Other"},
}

var seedTypes = []document.CatalogTypeDocument{
	{ID: 1, Type: "Mug"},
	{ID: 2, Type: "T-Shirt"},
	{ID: 3, Type: "Sheet"},
	{ID: 4, Type: "USB Memory Stick"},
}

type seedItem struct {
	typeID, brandID domain.ID
	name            string
	price           string
}

var seedItems = []seedItem{
	{2, 2, ".NET Bot Black Sweatshirt", "19.5"},
	{1, 2, ".NET Black & White Mug", "8.50"},
	{2, 5, "Prism White T-Shirt", "12"},
	{2, 2, ".NET Foundation Sweatshirt", "12"},
	{3, 5, "Roslyn Red Sheet", "8.5"},
	{2, 2, ".NET Blue Sweatshirt", "12"},
	{2, 5, "Roslyn Red T-Shirt", "12"},
	{2, 5, "Kudu Purple Sweatshirt", "8.5"},
	{1, 5, "Cup<T> White Mug", "12"},
	{3, 2, ".NET Foundation Sheet", "12"},
	{3, 2, "Cup<T> Sheet", "8.5"},
	{2, 5, "Prism White TShirt", "12"},
}

// SeedCatalog fills brands, types and items when the item collection is
// empty. Pictures keep the base url placeholder.
func SeedCatalog(ctx context.Context, db *mongo.Database) error {
	count, err := db.Collection(repository.CatalogItemsCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count catalog items: %w", err)
	}
	if count > 0 {
		return nil
	}

	brands := make([]any, len(seedBrands))
	for i := range seedBrands {
		brands[i] = seedBrands[i]
	}
	types := make([]any, len(seedTypes))
	for i := range seedTypes {
		types[i] = seedTypes[i]
	}
	items := make([]any, len(seedItems))
	for i, item := range seedItems {
		id := i + 1
		catalogItem := domain.NewCatalogItem(
			item.typeID,
			item.brandID,
			item.name,
			item.name,
			decimal.RequireFromString(item.price),
			fmt.Sprintf("%s%d.png", pictureBase, id),
		)
		catalogItem.ID = domain.ID(id)
		items[i] = document.ToCatalogItemDocument(catalogItem)
	}

	seeds := []struct {
		collection string
		docs       []any
	}{
		{repository.CatalogBrandsCollection, brands},
		{repository.CatalogTypesCollection, types},
		{repository.CatalogItemsCollection, items},
	}

	sequence := repository.NewSequence(db)
	for _, seed := range seeds {
		if _, err := db.Collection(seed.collection).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("failed to reset %s: %w", seed.collection, err)
		}
		if _, err := db.Collection(seed.collection).InsertMany(ctx, seed.docs); err != nil {
			return fmt.Errorf("failed to seed %s: %w", seed.collection, err)
		}
		if err := sequence.AtLeast(ctx, seed.collection, len(seed.docs)); err != nil {
			return err
		}
	}

	logger.Info(ctx, "catalog seeded", map[string]any{
		"brands": len(brands),
		"types":  len(types),
		"items":  len(items),
	})
	return nil
}

package document

import (
	"github.com/rafaelleal24/eshop/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BasketItemDocument struct {
	ID            int                  `bson:"id"`
	CatalogItemID int                  `bson:"catalog_item_id"`
	UnitPrice     primitive.Decimal128 `bson:"unit_price"`
	Quantity      int                  `bson:"quantity"`
}

// BasketDocument embeds its items; a basket is always read and written whole.
type BasketDocument struct {
	ID      int                  `bson:"_id"`
	BuyerID string               `bson:"buyer_id"`
	Items   []BasketItemDocument `bson:"items"`
}

func (doc BasketDocument) GetID() int {
	return doc.ID
}

func (doc *BasketDocument) ToDomain() *domain.Basket {
	items := make([]domain.BasketItem, len(doc.Items))
	for i, itemDoc := range doc.Items {
		items[i] = domain.BasketItem{
			ID:            domain.ID(itemDoc.ID),
			CatalogItemID: domain.ID(itemDoc.CatalogItemID),
			UnitPrice:     FromDecimal128(itemDoc.UnitPrice),
			Quantity:      itemDoc.Quantity,
		}
	}
	return &domain.Basket{
		ID:      domain.ID(doc.ID),
		BuyerID: doc.BuyerID,
		Items:   items,
	}
}

func ToBasketDocument(basket *domain.Basket) *BasketDocument {
	items := make([]BasketItemDocument, len(basket.Items))
	for i, item := range basket.Items {
		items[i] = BasketItemDocument{
			ID:            int(item.ID),
			CatalogItemID: int(item.CatalogItemID),
			UnitPrice:     ToDecimal128(item.UnitPrice),
			Quantity:      item.Quantity,
		}
	}
	return &BasketDocument{
		ID:      int(basket.ID),
		BuyerID: basket.BuyerID,
		Items:   items,
	}
}

package document

import (
	"time"

	"github.com/rafaelleal24/eshop/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AddressDocument struct {
	Street  string `bson:"street"`
	City    string `bson:"city"`
	State   string `bson:"state"`
	Country string `bson:"country"`
	ZipCode string `bson:"zip_code"`
}

type OrderItemDocument struct {
	ID            int                  `bson:"id"`
	CatalogItemID int                  `bson:"catalog_item_id"`
	ProductName   string               `bson:"product_name"`
	PictureURI    string               `bson:"picture_uri"`
	UnitPrice     primitive.Decimal128 `bson:"unit_price"`
	Units         int                  `bson:"units"`
}

type OrderDocument struct {
	ID            int                  `bson:"_id"`
	BuyerID       string               `bson:"buyer_id"`
	OrderDate     time.Time            `bson:"order_date"`
	ShipToAddress AddressDocument      `bson:"ship_to_address"`
	Items         []OrderItemDocument  `bson:"items"`
	Total         primitive.Decimal128 `bson:"total"`
}

func (doc OrderDocument) GetID() int {
	return doc.ID
}

func (doc *OrderDocument) ToDomain() *domain.Order {
	items := make([]domain.OrderItem, len(doc.Items))
	for i, itemDoc := range doc.Items {
		items[i] = domain.OrderItem{
			ID: domain.ID(itemDoc.ID),
			ItemOrdered: domain.NewCatalogItemOrdered(
				domain.ID(itemDoc.CatalogItemID),
				itemDoc.ProductName,
				itemDoc.PictureURI,
			),
			UnitPrice: FromDecimal128(itemDoc.UnitPrice),
			Units:     itemDoc.Units,
		}
	}

	return &domain.Order{
		ID:        domain.ID(doc.ID),
		BuyerID:   doc.BuyerID,
		OrderDate: doc.OrderDate.UTC(),
		ShipToAddress: domain.Address{
			Street:  doc.ShipToAddress.Street,
			City:    doc.ShipToAddress.City,
			State:   doc.ShipToAddress.State,
			Country: doc.ShipToAddress.Country,
			ZipCode: doc.ShipToAddress.ZipCode,
		},
		OrderItems: items,
	}
}

func ToOrderDocument(order *domain.Order) *OrderDocument {
	items := make([]OrderItemDocument, len(order.OrderItems))
	for i, item := range order.OrderItems {
		items[i] = OrderItemDocument{
			ID:            int(item.ID),
			CatalogItemID: int(item.ItemOrdered.CatalogItemID),
			ProductName:   item.ItemOrdered.ProductName,
			PictureURI:    item.ItemOrdered.PictureURI,
			UnitPrice:     ToDecimal128(item.UnitPrice),
			Units:         item.Units,
		}
	}

	return &OrderDocument{
		ID:        int(order.ID),
		BuyerID:   order.BuyerID,
		OrderDate: order.OrderDate,
		ShipToAddress: AddressDocument{
			Street:  order.ShipToAddress.Street,
			City:    order.ShipToAddress.City,
			State:   order.ShipToAddress.State,
			Country: order.ShipToAddress.Country,
			ZipCode: order.ShipToAddress.ZipCode,
		},
		Items: items,
		Total: ToDecimal128(order.Total()),
	}
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zipCode"`
}

// CatalogItemOrdered is a copy of a catalog item taken when the order is
// placed. Later catalog edits do not reach it.
type CatalogItemOrdered struct {
	CatalogItemID ID     `json:"catalogItemId"`
	ProductName   string `json:"productName"`
	PictureURI    string `json:"pictureUri"`
}

func NewCatalogItemOrdered(catalogItemID ID, productName, pictureURI string) CatalogItemOrdered {
	return CatalogItemOrdered{
		CatalogItemID: catalogItemID,
		ProductName:   productName,
		PictureURI:    pictureURI,
	}
}

type OrderItem struct {
	ID          ID
	ItemOrdered CatalogItemOrdered
	UnitPrice   decimal.Decimal
	Units       int
}

func NewOrderItem(itemOrdered CatalogItemOrdered, unitPrice decimal.Decimal, units int) OrderItem {
	return OrderItem{
		ItemOrdered: itemOrdered,
		UnitPrice:   unitPrice,
		Units:       units,
	}
}

func (i OrderItem) Total() decimal.Decimal {
	return LineTotal(i.UnitPrice, i.Units)
}

type Order struct {
	ID            ID
	BuyerID       string
	OrderDate     time.Time
	ShipToAddress Address
	OrderItems    []OrderItem
}

func NewOrder(buyerID string, shipToAddress Address, items []OrderItem) *Order {
	return &Order{
		BuyerID:       buyerID,
		OrderDate:     time.Now().UTC(),
		ShipToAddress: shipToAddress,
		OrderItems:    items,
	}
}

func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.OrderItems {
		total = total.Add(item.Total())
	}
	return total
}

type OrderCreatedItem struct {
	ItemOrdered CatalogItemOrdered `json:"itemOrdered"`
	UnitPrice   decimal.Decimal    `json:"unitPrice"`
	Units       int                `json:"units"`
}

type OrderCreatedEvent struct {
	OrderID       ID                 `json:"orderId"`
	BuyerID       string             `json:"buyerId"`
	OrderDate     time.Time          `json:"orderDate"`
	ShipToAddress Address            `json:"shipToAddress"`
	OrderItems    []OrderCreatedItem `json:"orderItems"`
	Total         decimal.Decimal    `json:"total"`
}

func (e *OrderCreatedEvent) GetName() string {
	return "order.created"
}

func (e *OrderCreatedEvent) GetEntityName() string {
	return "order"
}

func NewOrderCreatedEvent(order *Order) *OrderCreatedEvent {
	items := make([]OrderCreatedItem, len(order.OrderItems))
	for i, item := range order.OrderItems {
		items[i] = OrderCreatedItem{
			ItemOrdered: item.ItemOrdered,
			UnitPrice:   item.UnitPrice,
			Units:       item.Units,
		}
	}
	return &OrderCreatedEvent{
		OrderID:       order.ID,
		BuyerID:       order.BuyerID,
		OrderDate:     order.OrderDate,
		ShipToAddress: order.ShipToAddress,
		OrderItems:    items,
		Total:         order.Total(),
	}
}

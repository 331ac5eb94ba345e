package domain

import "github.com/shopspring/decimal"

type BasketItem struct {
	ID            ID
	CatalogItemID ID
	UnitPrice     decimal.Decimal
	Quantity      int
}

func (i *BasketItem) AddQuantity(quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	i.Quantity += quantity
	return nil
}

func (i *BasketItem) SetQuantity(quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	i.Quantity = quantity
	return nil
}

type Basket struct {
	ID      ID
	BuyerID string
	Items   []BasketItem
}

func NewBasket(buyerID string) *Basket {
	return &Basket{BuyerID: buyerID, Items: []BasketItem{}}
}

// AddItem appends a line for catalogItemID, or grows the existing line's
// quantity. The unit price of an existing line is left untouched.
func (b *Basket) AddItem(catalogItemID ID, unitPrice decimal.Decimal, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	for i := range b.Items {
		if b.Items[i].CatalogItemID == catalogItemID {
			return b.Items[i].AddQuantity(quantity)
		}
	}
	b.Items = append(b.Items, BasketItem{
		CatalogItemID: catalogItemID,
		UnitPrice:     unitPrice,
		Quantity:      quantity,
	})
	return nil
}

func (b *Basket) RemoveEmptyItems() {
	kept := b.Items[:0]
	for _, item := range b.Items {
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	b.Items = kept
}

func (b *Basket) SetNewBuyerID(buyerID string) {
	b.BuyerID = buyerID
}

func (b *Basket) TotalItems() int {
	total := 0
	for _, item := range b.Items {
		total += item.Quantity
	}
	return total
}

func (b *Basket) IsEmpty() bool {
	return len(b.Items) == 0
}

// CatalogItemIDs returns the distinct catalog items referenced by the basket,
// in first-seen order.
func (b *Basket) CatalogItemIDs() []ID {
	seen := make(map[ID]struct{}, len(b.Items))
	ids := make([]ID, 0, len(b.Items))
	for _, item := range b.Items {
		if _, ok := seen[item.CatalogItemID]; ok {
			continue
		}
		seen[item.CatalogItemID] = struct{}{}
		ids = append(ids, item.CatalogItemID)
	}
	return ids
}

package port

import "github.com/rafaelleal24/eshop/internal/core/domain"

// BasketSpecification selects a single basket together with its items,
// either by basket id or by buyer.
type BasketSpecification struct {
	BasketID domain.ID
	BuyerID  string
}

func BasketWithItems(basketID domain.ID) BasketSpecification {
	return BasketSpecification{BasketID: basketID}
}

func BasketWithItemsForBuyer(buyerID string) BasketSpecification {
	return BasketSpecification{BuyerID: buyerID}
}

// CatalogItemSpecification filters catalog items. Nil or empty fields do not
// filter, except IDs once ByIDs is set: an empty list then matches nothing.
// Take == 0 means no limit.
type CatalogItemSpecification struct {
	ByIDs   bool
	IDs     []domain.ID
	BrandID *domain.ID
	TypeID  *domain.ID
	Name    string
	Skip    int
	Take    int
}

func CatalogFilter(brandID, typeID *domain.ID) CatalogItemSpecification {
	return CatalogItemSpecification{BrandID: brandID, TypeID: typeID}
}

func CatalogFilterPaginated(skip, take int, brandID, typeID *domain.ID) CatalogItemSpecification {
	return CatalogItemSpecification{BrandID: brandID, TypeID: typeID, Skip: skip, Take: take}
}

func CatalogItemsByIDs(ids ...domain.ID) CatalogItemSpecification {
	return CatalogItemSpecification{ByIDs: true, IDs: ids}
}

func CatalogItemByName(name string) CatalogItemSpecification {
	return CatalogItemSpecification{Name: name}
}

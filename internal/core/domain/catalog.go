package domain

import "github.com/shopspring/decimal"

// DefaultPictureURI is assigned to catalog items created without a picture.
const DefaultPictureURI = "http://catalogbaseurltobereplaced/images/products/eCatalog-item-default.png"

type CatalogBrand struct {
	ID    ID
	Brand string
}

type CatalogType struct {
	ID   ID
	Type string
}

type CatalogItem struct {
	ID             ID
	Name           string
	Description    string
	Price          decimal.Decimal
	PictureURI     string
	CatalogTypeID  ID
	CatalogBrandID ID
}

func NewCatalogItem(catalogTypeID, catalogBrandID ID, description, name string, price decimal.Decimal, pictureURI string) *CatalogItem {
	if pictureURI == "" {
		pictureURI = DefaultPictureURI
	}
	return &CatalogItem{
		Name:           name,
		Description:    description,
		Price:          price,
		PictureURI:     pictureURI,
		CatalogTypeID:  catalogTypeID,
		CatalogBrandID: catalogBrandID,
	}
}

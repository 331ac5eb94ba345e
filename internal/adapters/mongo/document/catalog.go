package document

import (
	"github.com/rafaelleal24/eshop/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogItemDocument struct {
	ID             int                  `bson:"_id"`
	Name           string               `bson:"name"`
	Description    string               `bson:"description"`
	Price          primitive.Decimal128 `bson:"price"`
	PictureURI     string               `bson:"picture_uri"`
	CatalogTypeID  int                  `bson:"catalog_type_id"`
	CatalogBrandID int                  `bson:"catalog_brand_id"`
}

func (doc CatalogItemDocument) GetID() int {
	return doc.ID
}

func (doc *CatalogItemDocument) ToDomain() *domain.CatalogItem {
	return &domain.CatalogItem{
		ID:             domain.ID(doc.ID),
		Name:           doc.Name,
		Description:    doc.Description,
		Price:          FromDecimal128(doc.Price),
		PictureURI:     doc.PictureURI,
		CatalogTypeID:  domain.ID(doc.CatalogTypeID),
		CatalogBrandID: domain.ID(doc.CatalogBrandID),
	}
}

func ToCatalogItemDocument(item *domain.CatalogItem) *CatalogItemDocument {
	return &CatalogItemDocument{
		ID:             int(item.ID),
		Name:           item.Name,
		Description:    item.Description,
		Price:          ToDecimal128(item.Price),
		PictureURI:     item.PictureURI,
		CatalogTypeID:  int(item.CatalogTypeID),
		CatalogBrandID: int(item.CatalogBrandID),
	}
}

type CatalogBrandDocument struct {
	ID    int    `bson:"_id"`
	Brand string `bson:"brand"`
}

func (doc CatalogBrandDocument) GetID() int {
	return doc.ID
}

func (doc *CatalogBrandDocument) ToDomain() *domain.CatalogBrand {
	return &domain.CatalogBrand{ID: domain.ID(doc.ID), Brand: doc.Brand}
}

type CatalogTypeDocument struct {
	ID   int    `bson:"_id"`
	Type string `bson:"type"`
}

func (doc CatalogTypeDocument) GetID() int {
	return doc.ID
}

func (doc *CatalogTypeDocument) ToDomain() *domain.CatalogType {
	return &domain.CatalogType{ID: domain.ID(doc.ID), Type: doc.Type}
}

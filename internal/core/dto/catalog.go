package dto

import (
	"github.com/rafaelleal24/eshop/internal/core/domain"
	"github.com/shopspring/decimal"
)

type ListPagedCatalogItemRequest struct {
	CorrelationID  string `form:"-"`
	PageSize       *int   `form:"pageSize" binding:"omitempty,gte=0"`
	PageIndex      *int   `form:"pageIndex" binding:"omitempty,gte=0"`
	CatalogBrandID *int   `form:"catalogBrandId"`
	CatalogTypeID  *int   `form:"catalogTypeId"`
}

func (r *ListPagedCatalogItemRequest) Size() int {
	if r.PageSize == nil {
		return 0
	}
	return *r.PageSize
}

func (r *ListPagedCatalogItemRequest) Index() int {
	if r.PageIndex == nil {
		return 0
	}
	return *r.PageIndex
}

func (r *ListPagedCatalogItemRequest) BrandID() *domain.ID {
	return optionalID(r.CatalogBrandID)
}

func (r *ListPagedCatalogItemRequest) TypeID() *domain.ID {
	return optionalID(r.CatalogTypeID)
}

func optionalID(v *int) *domain.ID {
	if v == nil {
		return nil
	}
	id := domain.ID(*v)
	return &id
}

type CatalogItemDto struct {
	ID             domain.ID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	PictureURI     string    `json:"pictureUri"`
	CatalogTypeID  domain.ID `json:"catalogTypeId"`
	CatalogBrandID domain.ID `json:"catalogBrandId"`
}

// NewCatalogItemDto maps the entity as stored; PictureURI is still the raw
// reference until a URI composer rewrites it.
func NewCatalogItemDto(item *domain.CatalogItem) CatalogItemDto {
	return CatalogItemDto{
		ID:             item.ID,
		Name:           item.Name,
		Description:    item.Description,
		Price:          item.Price.InexactFloat64(),
		PictureURI:     item.PictureURI,
		CatalogTypeID:  item.CatalogTypeID,
		CatalogBrandID: item.CatalogBrandID,
	}
}

type ListPagedCatalogItemResponse struct {
	CorrelationID string           `json:"correlationId"`
	PageCount     int              `json:"pageCount"`
	CatalogItems  []CatalogItemDto `json:"catalogItems"`
}

func NewListPagedCatalogItemResponse(correlationID string) *ListPagedCatalogItemResponse {
	return &ListPagedCatalogItemResponse{
		CorrelationID: correlationID,
		CatalogItems:  []CatalogItemDto{},
	}
}

type CreateCatalogItemRequest struct {
	CatalogBrandID domain.ID       `json:"catalogBrandId" binding:"required,gt=0"`
	CatalogTypeID  domain.ID       `json:"catalogTypeId" binding:"required,gt=0"`
	Description    string          `json:"description"`
	Name           string          `json:"name" binding:"required"`
	PictureURI     string          `json:"pictureUri"`
	Price          decimal.Decimal `json:"price"`
}

type CatalogBrandDto struct {
	ID   domain.ID `json:"id"`
	Name string    `json:"name"`
}

type CatalogTypeDto struct {
	ID   domain.ID `json:"id"`
	Name string    `json:"name"`
}

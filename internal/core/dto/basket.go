package dto

import "github.com/rafaelleal24/eshop/internal/core/domain"

type AddBasketItemRequest struct {
	CatalogItemID domain.ID `json:"catalogItemId" binding:"required,gt=0"`
	Quantity      int       `json:"quantity" binding:"required,gt=0"`
}

type SetQuantitiesRequest struct {
	Quantities map[domain.ID]int `json:"quantities" binding:"required"`
}

type TransferBasketRequest struct {
	AnonymousID string `json:"anonymousId" binding:"required"`
}

package dto

import "github.com/rafaelleal24/eshop/internal/core/domain"

type CreateOrderRequest struct {
	BasketID        domain.ID      `json:"basketId" binding:"required,gt=0"`
	ShippingAddress domain.Address `json:"shippingAddress"`
}

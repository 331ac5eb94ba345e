package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/eshop/internal/adapters/http/handlers"
	"github.com/rafaelleal24/eshop/internal/core/domain"
	"github.com/rafaelleal24/eshop/internal/core/dto"
	"github.com/rafaelleal24/eshop/internal/core/service"
	"github.com/rafaelleal24/eshop/internal/core/serviceerrors"
)

type BasketController struct {
	basketService *service.BasketService
}

type BasketItemResponse struct {
	ID            domain.ID `json:"id"`
	CatalogItemID domain.ID `json:"catalogItemId"`
	UnitPrice     float64   `json:"unitPrice"`
	Quantity      int       `json:"quantity"`
}

type BasketResponse struct {
	ID         domain.ID            `json:"id"`
	BuyerID    string               `json:"buyerId"`
	Items      []BasketItemResponse `json:"items"`
	TotalItems int                  `json:"totalItems"`
}

func NewBasketResponse(basket *domain.Basket) BasketResponse {
	items := make([]BasketItemResponse, len(basket.Items))
	for i, item := range basket.Items {
		items[i] = BasketItemResponse{
			ID:            item.ID,
			CatalogItemID: item.CatalogItemID,
			UnitPrice:     item.UnitPrice.InexactFloat64(),
			Quantity:      item.Quantity,
		}
	}
	return BasketResponse{
		ID:         basket.ID,
		BuyerID:    basket.BuyerID,
		Items:      items,
		TotalItems: basket.TotalItems(),
	}
}

func NewBasketController(basketService *service.BasketService) *BasketController {
	return &BasketController{basketService: basketService}
}

// GetBasket godoc
// @Summary     Get buyer basket
// @Tags        baskets
// @Produce     json
// @Param       buyerId path     string true "Buyer ID"
// @Success     200     {object} BasketResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/buyers/{buyerId}/basket [get]
func (bc *BasketController) GetBasket(c *gin.Context) {
	basket, err := bc.basketService.GetBasketForBuyer(c.Request.Context(), c.Param("buyerId"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBasketResponse(basket))
}

// AddItem godoc
// @Summary     Add item to basket
// @Description Adds a catalog item at its current catalog price
// @Tags        baskets
// @Accept      json
// @Produce     json
// @Param       buyerId path     string                   true "Buyer ID"
// @Param       request body     dto.AddBasketItemRequest true "Item"
// @Success     200     {object} BasketResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/buyers/{buyerId}/basket/items [post]
func (bc *BasketController) AddItem(c *gin.Context) {
	var request dto.AddBasketItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	basket, err := bc.basketService.AddItemToBasket(c.Request.Context(), c.Param("buyerId"), request.CatalogItemID, request.Quantity)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBasketResponse(basket))
}

// Transfer godoc
// @Summary     Transfer anonymous basket
// @Description Merges an anonymous basket into the buyer's basket
// @Tags        baskets
// @Accept      json
// @Param       buyerId path string                     true "Buyer ID"
// @Param       request body dto.TransferBasketRequest true "Anonymous buyer"
// @Success     204
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/buyers/{buyerId}/basket/transfer [post]
func (bc *BasketController) Transfer(c *gin.Context) {
	var request dto.TransferBasketRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	if err := bc.basketService.TransferBasket(c.Request.Context(), request.AnonymousID, c.Param("buyerId")); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetQuantities godoc
// @Summary     Set basket quantities
// @Description Updates line quantities by basket item id, zero removes the line
// @Tags        baskets
// @Accept      json
// @Produce     json
// @Param       id      path     int                       true "Basket ID"
// @Param       request body     dto.SetQuantitiesRequest  true "Quantities"
// @Success     200     {object} BasketResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/baskets/{id}/quantities [put]
func (bc *BasketController) SetQuantities(c *gin.Context) {
	basketID, ok := domain.ParseID(c.Param("id"))
	if !ok {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid basket ID"))
		return
	}
	var request dto.SetQuantitiesRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	basket, err := bc.basketService.SetQuantities(c.Request.Context(), basketID, request.Quantities)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBasketResponse(basket))
}

// Delete godoc
// @Summary     Delete basket
// @Tags        baskets
// @Param       id  path int true "Basket ID"
// @Success     204
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/baskets/{id} [delete]
func (bc *BasketController) Delete(c *gin.Context) {
	basketID, ok := domain.ParseID(c.Param("id"))
	if !ok {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid basket ID"))
		return
	}
	if err := bc.basketService.DeleteBasket(c.Request.Context(), basketID); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/eshop/internal/adapters/http/handlers"
	"github.com/rafaelleal24/eshop/internal/core/domain"
	"github.com/rafaelleal24/eshop/internal/core/dto"
	"github.com/rafaelleal24/eshop/internal/core/service"
	"github.com/rafaelleal24/eshop/internal/core/serviceerrors"
)

type OrderController struct {
	orderService *service.OrderService
}

type OrderItemResponse struct {
	ID          domain.ID                 `json:"id"`
	ItemOrdered domain.CatalogItemOrdered `json:"itemOrdered"`
	UnitPrice   float64                   `json:"unitPrice"`
	Units       int                       `json:"units"`
}

type OrderResponse struct {
	ID            domain.ID           `json:"id"`
	BuyerID       string              `json:"buyerId"`
	OrderDate     time.Time           `json:"orderDate"`
	ShipToAddress domain.Address      `json:"shipToAddress"`
	OrderItems    []OrderItemResponse `json:"orderItems"`
	Total         float64             `json:"total"`
}

// OrderNotPublishedResponse is returned when the order was stored but the
// downstream notification could not be sent.
type OrderNotPublishedResponse struct {
	Error string        `json:"error"`
	Order OrderResponse `json:"order"`
}

func NewOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.OrderItems))
	for i, item := range order.OrderItems {
		items[i] = OrderItemResponse{
			ID:          item.ID,
			ItemOrdered: item.ItemOrdered,
			UnitPrice:   item.UnitPrice.InexactFloat64(),
			Units:       item.Units,
		}
	}
	return OrderResponse{
		ID:            order.ID,
		BuyerID:       order.BuyerID,
		OrderDate:     order.OrderDate,
		ShipToAddress: order.ShipToAddress,
		OrderItems:    items,
		Total:         order.Total().InexactFloat64(),
	}
}

func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder godoc
// @Summary     Create an order
// @Description Checks out a basket into an order and publishes order.created
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header   string                 false "Idempotency key"
// @Param       request         body     dto.CreateOrderRequest  true  "Basket and shipping address"
// @Success     201             {object} OrderResponse
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     404             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     422             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Failure     502             {object} OrderNotPublishedResponse
// @Router      /api/orders [post]
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var request dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	idempotencyKey := c.GetHeader("Idempotency-Key")
	order, err := oc.orderService.CreateOrder(c.Request.Context(), idempotencyKey, &request)
	if err != nil {
		var svcErr *serviceerrors.ServiceError
		if order != nil && errors.As(err, &svcErr) && svcErr.Kind == serviceerrors.KindTransport {
			c.JSON(http.StatusBadGateway, OrderNotPublishedResponse{
				Error: svcErr.Message,
				Order: NewOrderResponse(order),
			})
			return
		}
		handlers.HandleError(c, err)
		return
	}
	if order == nil {
		handlers.HandleError(c, serviceerrors.NewDataIntegrityError("order was not created"))
		return
	}
	c.JSON(http.StatusCreated, NewOrderResponse(order))
}

// GetOrderByID godoc
// @Summary     Get order by ID
// @Tags        orders
// @Produce     json
// @Param       id  path     int true "Order ID"
// @Success     200 {object} OrderResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/orders/{id} [get]
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	orderID, ok := domain.ParseID(c.Param("id"))
	if !ok {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid order ID"))
		return
	}
	order, err := oc.orderService.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewOrderResponse(order))
}

// ListForBuyer godoc
// @Summary     List buyer orders
// @Description Returns the buyer's orders, newest first
// @Tags        orders
// @Produce     json
// @Param       buyerId path     string true  "Buyer ID"
// @Param       limit   query    int    false "Max results, default 20, capped at 100"
// @Param       offset  query    int    false "Results to skip"
// @Success     200     {array}  OrderResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/buyers/{buyerId}/orders [get]
func (oc *OrderController) ListForBuyer(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid limit"))
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid offset"))
		return
	}

	orders, err := oc.orderService.ListOrdersForBuyer(c.Request.Context(), c.Param("buyerId"), limit, offset)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	response := make([]OrderResponse, len(orders))
	for i, order := range orders {
		response[i] = NewOrderResponse(order)
	}
	c.JSON(http.StatusOK, response)
}

func queryInt(c *gin.Context, name string) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

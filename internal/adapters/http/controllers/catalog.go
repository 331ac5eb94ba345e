package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/eshop/internal/adapters/http/handlers"
	"github.com/rafaelleal24/eshop/internal/adapters/http/middleware"
	"github.com/rafaelleal24/eshop/internal/core/domain"
	"github.com/rafaelleal24/eshop/internal/core/dto"
	"github.com/rafaelleal24/eshop/internal/core/service"
	"github.com/rafaelleal24/eshop/internal/core/serviceerrors"
)

type CatalogController struct {
	catalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ListPaged godoc
// @Summary     List catalog items
// @Description Returns one page of catalog items, optionally filtered by brand and type
// @Tags        catalog
// @Produce     json
// @Param       pageSize       query    int false "Page size, 0 returns every item"
// @Param       pageIndex      query    int false "Zero based page index"
// @Param       catalogBrandId query    int false "Brand filter"
// @Param       catalogTypeId  query    int false "Type filter"
// @Success     200            {object} dto.ListPagedCatalogItemResponse
// @Failure     400            {object} handlers.ErrorResponse
// @Failure     500            {object} handlers.ErrorResponse
// @Router      /api/catalog-items [get]
func (cc *CatalogController) ListPaged(c *gin.Context) {
	var request dto.ListPagedCatalogItemRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	request.CorrelationID = middleware.CorrelationID(c)

	response, err := cc.catalogService.ListPaged(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetByID godoc
// @Summary     Get catalog item
// @Tags        catalog
// @Produce     json
// @Param       id  path     int true "Catalog item ID"
// @Success     200 {object} dto.CatalogItemDto
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/catalog-items/{id} [get]
func (cc *CatalogController) GetByID(c *gin.Context) {
	id, ok := domain.ParseID(c.Param("id"))
	if !ok {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid catalog item ID"))
		return
	}
	item, err := cc.catalogService.GetByID(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create godoc
// @Summary     Create catalog item
// @Tags        catalog
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateCatalogItemRequest true "Catalog item"
// @Success     201     {object} dto.CatalogItemDto
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/catalog-items [post]
func (cc *CatalogController) Create(c *gin.Context) {
	var request dto.CreateCatalogItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	item, err := cc.catalogService.Create(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Delete godoc
// @Summary     Delete catalog item
// @Tags        catalog
// @Param       id  path int true "Catalog item ID"
// @Success     204
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/catalog-items/{id} [delete]
func (cc *CatalogController) Delete(c *gin.Context) {
	id, ok := domain.ParseID(c.Param("id"))
	if !ok {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid catalog item ID"))
		return
	}
	if err := cc.catalogService.Delete(c.Request.Context(), id); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBrands godoc
// @Summary     List catalog brands
// @Tags        catalog
// @Produce     json
// @Success     200 {array}  dto.CatalogBrandDto
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/catalog-brands [get]
func (cc *CatalogController) ListBrands(c *gin.Context) {
	brands, err := cc.catalogService.ListBrands(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

// ListTypes godoc
// @Summary     List catalog types
// @Tags        catalog
// @Produce     json
// @Success     200 {array}  dto.CatalogTypeDto
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/catalog-types [get]
func (cc *CatalogController) ListTypes(c *gin.Context) {
	types, err := cc.catalogService.ListTypes(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

package service

import (
	"context"
	"math"

	"github.com/rafaelleal24/eshop/internal/core/domain"
	"github.com/rafaelleal24/eshop/internal/core/dto"
	"github.com/rafaelleal24/eshop/internal/core/logger"
	"github.com/rafaelleal24/eshop/internal/core/port"
	"github.com/rafaelleal24/eshop/internal/core/serviceerrors"
)

type CatalogService struct {
	itemRepository  port.CatalogItemPort
	brandRepository port.CatalogBrandPort
	typeRepository  port.CatalogTypePort
	uriComposer     port.URIComposer
}

func NewCatalogService(
	itemRepository port.CatalogItemPort,
	brandRepository port.CatalogBrandPort,
	typeRepository port.CatalogTypePort,
	uriComposer port.URIComposer,
) *CatalogService {
	return &CatalogService{
		itemRepository:  itemRepository,
		brandRepository: brandRepository,
		typeRepository:  typeRepository,
		uriComposer:     uriComposer,
	}
}

// ListPaged never fails on an empty result. A page size of zero disables
// paging: every matching item comes back on a single page.
func (s *CatalogService) ListPaged(ctx context.Context, request *dto.ListPagedCatalogItemRequest) (*dto.ListPagedCatalogItemResponse, error) {
	pageSize, pageIndex := request.Size(), request.Index()
	brandID, typeID := request.BrandID(), request.TypeID()
	if pageSize < 0 || pageIndex < 0 {
		return nil, serviceerrors.NewInvalidRequestError("page size and page index must not be negative")
	}
	if pageSize > 0 && pageIndex > math.MaxInt/pageSize {
		return nil, serviceerrors.NewInvalidRequestError("page index out of range")
	}

	totalItems, err := s.itemRepository.Count(ctx, port.CatalogFilter(brandID, typeID))
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepository.List(ctx, port.CatalogFilterPaginated(pageIndex*pageSize, pageSize, brandID, typeID))
	if err != nil {
		return nil, err
	}

	response := dto.NewListPagedCatalogItemResponse(request.CorrelationID)
	for _, item := range items {
		response.CatalogItems = append(response.CatalogItems, s.toDto(item))
	}
	response.PageCount = pageCount(totalItems, pageSize)

	logger.Debug(ctx, "catalog items listed", map[string]any{
		"page_size":   pageSize,
		"page_index":  pageIndex,
		"total_items": totalItems,
	})
	return response, nil
}

func pageCount(totalItems, pageSize int) int {
	if pageSize > 0 {
		return (totalItems + pageSize - 1) / pageSize
	}
	if totalItems > 0 {
		return 1
	}
	return 0
}

func (s *CatalogService) toDto(item *domain.CatalogItem) dto.CatalogItemDto {
	itemDto := dto.NewCatalogItemDto(item)
	itemDto.PictureURI = s.uriComposer.ComposePicURI(itemDto.PictureURI)
	return itemDto
}

func (s *CatalogService) GetByID(ctx context.Context, id domain.ID) (*dto.CatalogItemDto, error) {
	item, err := s.itemRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	itemDto := s.toDto(item)
	return &itemDto, nil
}

func (s *CatalogService) Create(ctx context.Context, request *dto.CreateCatalogItemRequest) (*dto.CatalogItemDto, error) {
	if request.Price.IsNegative() {
		return nil, serviceerrors.NewInvalidRequestError("price must not be negative")
	}

	existing, err := s.itemRepository.Count(ctx, port.CatalogItemByName(request.Name))
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, serviceerrors.NewConflictError("a catalog item with this name already exists")
	}

	item, err := s.itemRepository.Add(ctx, domain.NewCatalogItem(
		request.CatalogTypeID,
		request.CatalogBrandID,
		request.Description,
		request.Name,
		request.Price,
		request.PictureURI,
	))
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Catalog item created", map[string]any{
		"catalog_item_id": item.ID,
		"name":            item.Name,
	})

	itemDto := s.toDto(item)
	return &itemDto, nil
}

func (s *CatalogService) Delete(ctx context.Context, id domain.ID) error {
	if err := s.itemRepository.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info(ctx, "Catalog item deleted", map[string]any{
		"catalog_item_id": id,
	})
	return nil
}

func (s *CatalogService) ListBrands(ctx context.Context) ([]dto.CatalogBrandDto, error) {
	brands, err := s.brandRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CatalogBrandDto, len(brands))
	for i, brand := range brands {
		result[i] = dto.CatalogBrandDto{ID: brand.ID, Name: brand.Brand}
	}
	return result, nil
}

func (s *CatalogService) ListTypes(ctx context.Context) ([]dto.CatalogTypeDto, error) {
	types, err := s.typeRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CatalogTypeDto, len(types))
	for i, catalogType := range types {
		result[i] = dto.CatalogTypeDto{ID: catalogType.ID, Name: catalogType.Type}
	}
	return result, nil
}

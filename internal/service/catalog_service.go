package service

import (
	"context"
	"fmt"

	"stock-visibility-be/internal/dto"
	"stock-visibility-be/internal/entity"
	"stock-visibility-be/internal/pkg/cache"
	"stock-visibility-be/internal/pkg/logger"
	"stock-visibility-be/internal/repository/specification"
	"stock-visibility-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const defaultListingLimit = 20

type ICatalogService interface {
	// Storefront (visibility rules apply)
	ListProducts(ctx context.Context, req *dto.ListProductsRequest) (*dto.ListProductsResponse, error)
	ShowProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error)

	// Admin (pass-through context, never filtered)
	AdminListProducts(ctx context.Context, req *dto.AdminListProductsRequest) (*dto.AdminListProductsResponse, error)
	CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.AdminProductResponse, error)
	UpdateStock(ctx context.Context, id uuid.UUID, req *dto.UpdateStockRequest) (*dto.AdminProductResponse, error)
}

type catalogService struct {
	uowFactory       unitofwork.RepositoryFactory
	visibility       IVisibilityService
	publisherService IPublisherService
	listingCache     *cache.ListingCache
	logger           logger.ILogger
}

func NewCatalogService(
	uowFactory unitofwork.RepositoryFactory,
	visibility IVisibilityService,
	publisherService IPublisherService,
	listingCache *cache.ListingCache,
	sysLogger logger.ILogger,
) ICatalogService {
	return &catalogService{
		uowFactory:       uowFactory,
		visibility:       visibility,
		publisherService: publisherService,
		listingCache:     listingCache,
		logger:           sysLogger,
	}
}

// ListProducts serves the primary storefront listing. This is the extension
// point where the visibility rules hook into the query: settings are
// resolved fresh, turned into specifications, and appended before execution.
func (s *catalogService) ListProducts(ctx context.Context, req *dto.ListProductsRequest) (*dto.ListProductsResponse, error) {
	pageType := entity.PageTypeShop
	if req.PageType != "" {
		pageType = entity.PageType(req.PageType)
	}
	if pageType == entity.PageTypeCategory && req.CategoryId == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "category_id is required for category listings")
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultListingLimit
	}

	categoryParam := ""
	if req.CategoryId != nil {
		categoryParam = req.CategoryId.String()
	}
	cacheKey := s.listingCache.Key(ctx, fmt.Sprintf("%s:%s:%s:%d:%d", pageType, categoryParam, req.Query, limit, req.Offset))

	var cached dto.ListProductsResponse
	if s.listingCache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	// The settings record is read fresh on every listing request
	settings, err := s.visibility.ResolveSettings(ctx)
	if err != nil {
		return nil, err
	}

	baseSpecs := []specification.Specification{specification.Published{}}
	switch pageType {
	case entity.PageTypeCategory:
		baseSpecs = append(baseSpecs, specification.InCategory{CategoryID: *req.CategoryId})
	case entity.PageTypeSearch:
		if req.Query != "" {
			baseSpecs = append(baseSpecs, specification.NameSearch{Query: req.Query})
		}
	}

	baseSpecs = append(baseSpecs, s.visibility.ListingSpecifications(settings, entity.ListingContext{
		PageType:  pageType,
		IsPrimary: true,
	})...)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.ProductRepository().Count(ctx, baseSpecs...)
	if err != nil {
		return nil, err
	}

	findSpecs := append(baseSpecs,
		specification.OrderBy{Field: "products.created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: req.Offset},
	)
	products, err := uow.ProductRepository().FindAll(ctx, findSpecs...)
	if err != nil {
		return nil, err
	}

	response := &dto.ListProductsResponse{
		Products: make([]*dto.ProductResponse, 0, len(products)),
		Total:    total,
		Limit:    limit,
		Offset:   req.Offset,
	}
	for _, product := range products {
		response.Products = append(response.Products, s.toStorefrontResponse(settings, product))
	}

	s.listingCache.Set(ctx, cacheKey, response)
	return response, nil
}

// ShowProduct serves the product detail page. Detail lookups are not the
// primary listing query, so visibility filtering does not apply; the label
// decorator still does.
func (s *catalogService) ShowProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.Published{},
	)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Product not found")
	}

	settings, err := s.visibility.ResolveSettings(ctx)
	if err != nil {
		return nil, err
	}

	return s.toStorefrontResponse(settings, product), nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	categories, err := uow.CategoryRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, &dto.CategoryResponse{
			Id:       category.Id,
			Name:     category.Name,
			Slug:     category.Slug,
			ParentId: category.ParentId,
		})
	}
	return result, nil
}

func (s *catalogService) AdminListProducts(ctx context.Context, req *dto.AdminListProductsRequest) (*dto.AdminListProductsResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListingLimit
	}

	specs := []specification.Specification{}
	if req.StockStatus != "" {
		specs = append(specs, specification.StockStatusIs{Status: entity.StockStatus(req.StockStatus)})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.ProductRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	findSpecs := append(specs,
		specification.OrderBy{Field: "products.created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: req.Offset},
	)
	products, err := uow.ProductRepository().FindAll(ctx, findSpecs...)
	if err != nil {
		return nil, err
	}

	response := &dto.AdminListProductsResponse{
		Products: make([]*dto.AdminProductResponse, 0, len(products)),
		Total:    total,
		Limit:    limit,
		Offset:   req.Offset,
	}
	for _, product := range products {
		response.Products = append(response.Products, toAdminResponse(product))
	}
	return response, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.AdminProductResponse, error) {
	stockStatus := entity.StockStatusInStock
	if req.StockStatus != "" {
		stockStatus = entity.StockStatus(req.StockStatus)
	}

	product := entity.Product{
		Id:            uuid.New(),
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		Price:         req.Price,
		StockStatus:   stockStatus,
		StockQuantity: req.StockQuantity,
		Status:        entity.ProductStatusPublished,
	}

	// Product row and category memberships commit together or not at all
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ProductRepository().Create(ctx, &product); err != nil {
		return nil, err
	}
	if len(req.CategoryIds) > 0 {
		if err := uow.ProductRepository().AssignCategories(ctx, product.Id, req.CategoryIds); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toAdminResponse(&product), nil
}

// UpdateStock changes a product's stock state and announces the change so
// the listing cache and notifications catch up.
func (s *catalogService) UpdateStock(ctx context.Context, id uuid.UUID, req *dto.UpdateStockRequest) (*dto.AdminProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Product not found")
	}

	oldStatus := product.StockStatus
	product.StockStatus = entity.StockStatus(req.StockStatus)
	product.StockQuantity = req.StockQuantity

	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return nil, err
	}

	if oldStatus != product.StockStatus {
		if err := s.publisherService.PublishStockChanged(ctx, &dto.StockChangedMessage{
			ProductId:   product.Id,
			ProductName: product.Name,
			OldStatus:   string(oldStatus),
			NewStatus:   string(product.StockStatus),
			Quantity:    product.StockQuantity,
		}); err != nil {
			s.logger.Warn("CatalogService", "Failed to publish stock change event", map[string]interface{}{
				"product_id": product.Id.String(),
				"error":      err.Error(),
			})
		}
	}

	return toAdminResponse(product), nil
}

func (s *catalogService) toStorefrontResponse(settings *entity.StockVisibilitySettings, product *entity.Product) *dto.ProductResponse {
	purchasable := product.StockStatus == entity.StockStatusInStock ||
		product.StockStatus == entity.StockStatusOnBackorder ||
		settings.DisplayMode == entity.DisplayModeBackorder

	return &dto.ProductResponse{
		Id:               product.Id,
		Name:             product.Name,
		Slug:             product.Slug,
		Description:      product.Description,
		Price:            product.Price,
		StockStatus:      string(product.StockStatus),
		AvailabilityText: s.visibility.AvailabilityLabel(settings, product.DefaultAvailabilityText(), product.StockStatus),
		Purchasable:      purchasable,
		CreatedAt:        product.CreatedAt,
		UpdatedAt:        product.UpdatedAt,
	}
}

func toAdminResponse(product *entity.Product) *dto.AdminProductResponse {
	return &dto.AdminProductResponse{
		Id:            product.Id,
		Name:          product.Name,
		Slug:          product.Slug,
		Price:         product.Price,
		StockStatus:   string(product.StockStatus),
		StockQuantity: product.StockQuantity,
		Status:        product.Status,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

package controller

import (
	"stock-visibility-be/internal/dto"
	"stock-visibility-be/internal/pkg/serverutils"
	"stock-visibility-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminCatalogController interface {
	RegisterRoutes(r fiber.Router)
	ListProducts(ctx *fiber.Ctx) error
	CreateProduct(ctx *fiber.Ctx) error
	UpdateStock(ctx *fiber.Ctx) error
}

type adminCatalogController struct {
	catalogService service.ICatalogService
}

func NewAdminCatalogController(catalogService service.ICatalogService) IAdminCatalogController {
	return &adminCatalogController{
		catalogService: catalogService,
	}
}

// RegisterRoutes mounts the admin catalog surface. Listings here always show
// every product regardless of stock visibility settings.
func (c *adminCatalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/catalog/v1")
	h.Use(serverutils.JwtMiddleware, serverutils.AdminMiddleware)
	h.Get("products", c.ListProducts)
	h.Post("products", c.CreateProduct)
	h.Put("products/:id/stock", c.UpdateStock)
}

func (c *adminCatalogController) ListProducts(ctx *fiber.Ctx) error {
	var req dto.AdminListProductsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.AdminListProducts(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list products", res))
}

func (c *adminCatalogController) CreateProduct(ctx *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateProduct(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create product", res))
}

func (c *adminCatalogController) UpdateStock(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid product ID")
	}

	var req dto.UpdateStockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.UpdateStock(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update stock", res))
}

package controller

import (
	"stock-visibility-be/internal/dto"
	"stock-visibility-be/internal/pkg/serverutils"
	"stock-visibility-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISettingsController interface {
	RegisterRoutes(r fiber.Router)
	GetStockVisibility(ctx *fiber.Ctx) error
	UpdateStockVisibility(ctx *fiber.Ctx) error
}

type settingsController struct {
	settingsService service.ISettingsService
}

func NewSettingsController(settingsService service.ISettingsService) ISettingsController {
	return &settingsController{
		settingsService: settingsService,
	}
}

func (c *settingsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/settings/v1")
	h.Use(serverutils.JwtMiddleware, serverutils.AdminMiddleware)
	h.Get("stock-visibility", c.GetStockVisibility)
	h.Put("stock-visibility", c.UpdateStockVisibility)
}

func (c *settingsController) GetStockVisibility(ctx *fiber.Ctx) error {
	res, err := c.settingsService.GetStockVisibility(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get stock visibility settings", res))
}

func (c *settingsController) UpdateStockVisibility(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(string)

	var req dto.UpdateStockVisibilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.settingsService.UpdateStockVisibility(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update stock visibility settings", res))
}

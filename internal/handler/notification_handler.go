package handler

import (
	"os"

	"stock-visibility-be/internal/dto"
	"stock-visibility-be/internal/pkg/logger"
	"stock-visibility-be/internal/pkg/serverutils"
	"stock-visibility-be/internal/service"
	internalWS "stock-visibility-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	service service.INotificationService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewNotificationHandler(service service.INotificationService, hub *internalWS.Hub, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		hub:     hub,
		logger:  log,
	}
}

// ServeWs upgrades a dashboard connection. Browsers cannot set headers on
// websocket handshakes, so the token rides in the query string; the
// Authorization header still works for tooling.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (query 'token' or Authorization header)"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("NotificationHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Admin access required"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("NotificationHandler", "Dashboard websocket session started", nil)
			internalWS.ServeWs(h.hub, conn)
			h.logger.Info("NotificationHandler", "Dashboard websocket session ended", nil)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// GetNotifications returns persisted store notifications.
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	var req dto.ListNotificationsRequest
	if err := c.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := h.service.List(c.Context(), &req)
	if err != nil {
		return err
	}

	return c.JSON(serverutils.SuccessResponse("Success list notifications", res))
}

// MarkAsRead marks a specific notification as read.
func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	if err := h.service.MarkRead(c.Context(), id); err != nil {
		return err
	}

	return c.JSON(serverutils.SuccessResponse[any]("Success mark notification read", nil))
}

// RegisterRoutes registers the notification routes.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	notif := router.Group("/admin/notifications/v1")
	notif.Use(serverutils.JwtMiddleware, serverutils.AdminMiddleware)
	notif.Get("", h.GetNotifications)
	notif.Put(":id/read", h.MarkAsRead)

	// WebSocket does its own token check (query param handshake)
	router.Get("/ws", h.ServeWs)
}

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"stock-visibility-be/internal/dto"
	"stock-visibility-be/internal/entity"
	"stock-visibility-be/internal/pkg/logger"
	"stock-visibility-be/internal/repository/specification"
	"stock-visibility-be/internal/repository/unitofwork"
	"stock-visibility-be/pkg/events"
	"stock-visibility-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationDelivery pushes a serialized notification to connected admin
// dashboards. The websocket hub implements it.
type NotificationDelivery interface {
	Broadcast(message []byte)
}

type INotificationService interface {
	Start() error
	List(ctx context.Context, req *dto.ListNotificationsRequest) (*dto.ListNotificationsResponse, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *nats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	subscriber *nats.Subscriber,
	delivery NotificationDelivery,
	sysLogger logger.ILogger,
) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		subscriber: subscriber,
		delivery:   delivery,
		logger:     sysLogger,
	}
}

// Start subscribes to the store event stream. Each event is persisted as a
// notification row, then pushed to connected dashboards.
func (s *notificationService) Start() error {
	if s.subscriber == nil {
		s.logger.Warn("NotificationService", "NATS subscriber unavailable, notifications disabled", nil)
		return nil
	}
	return s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
}

func (s *notificationService) handleEvent(ctx context.Context, event events.Event) error {
	notification := s.buildNotification(event)
	if notification == nil {
		// Unknown event types are acked and dropped
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		return err
	}

	if raw, err := json.Marshal(toNotificationResponse(notification)); err == nil {
		s.delivery.Broadcast(raw)
	}

	return nil
}

func (s *notificationService) buildNotification(event events.Event) *entity.Notification {
	data := event.Payload()

	switch event.EventType() {
	case events.TypeStockChanged:
		productName, _ := data["product_name"].(string)
		newStatus, _ := data["new_status"].(string)
		return &entity.Notification{
			Id:       uuid.New(),
			TypeCode: entity.NotificationStockChanged,
			Title:    "Product stock changed",
			Message:  fmt.Sprintf("%s is now %s", productName, newStatus),
			Metadata: data,
		}
	case events.TypeSettingsUpdated:
		updatedBy, _ := data["updated_by"].(string)
		return &entity.Notification{
			Id:       uuid.New(),
			TypeCode: entity.NotificationSettingsUpdated,
			Title:    "Stock visibility settings updated",
			Message:  fmt.Sprintf("Settings were updated by %s", updatedBy),
			Metadata: data,
		}
	default:
		return nil
	}
}

func (s *notificationService) List(ctx context.Context, req *dto.ListNotificationsRequest) (*dto.ListNotificationsResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListingLimit
	}

	specs := []specification.Specification{}
	if req.UnreadOnly {
		specs = append(specs, specification.Filter("is_read", false))
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	unread, err := uow.NotificationRepository().Count(ctx, specification.Filter("is_read", false))
	if err != nil {
		return nil, err
	}

	findSpecs := append(specs, specification.Pagination{Limit: limit, Offset: req.Offset})
	notifications, err := uow.NotificationRepository().FindAll(ctx, findSpecs...)
	if err != nil {
		return nil, err
	}

	response := &dto.ListNotificationsResponse{
		Notifications: make([]*dto.NotificationResponse, 0, len(notifications)),
		Unread:        unread,
	}
	for _, notification := range notifications {
		response.Notifications = append(response.Notifications, toNotificationResponse(notification))
	}
	return response, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkRead(ctx, id)
}

func toNotificationResponse(notification *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		Id:        notification.Id,
		TypeCode:  notification.TypeCode,
		Title:     notification.Title,
		Message:   notification.Message,
		Metadata:  notification.Metadata,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}

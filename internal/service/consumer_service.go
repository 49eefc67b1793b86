package service

import (
	"context"
	"encoding/json"

	"stock-visibility-be/internal/config"
	"stock-visibility-be/internal/entity"
	"stock-visibility-be/internal/pkg/cache"
	"stock-visibility-be/internal/pkg/logger"
	"stock-visibility-be/internal/pkg/mailer"
	"stock-visibility-be/pkg/events"
	"stock-visibility-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService drains the in-process event bus: it invalidates the
// listing cache, alerts the store owner when a product runs out, and mirrors
// events onto NATS for downstream consumers.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub        *gochannel.GoChannel
	listingCache  *cache.ListingCache
	emailService  mailer.IEmailService
	natsPublisher *nats.Publisher
	storeConfig   config.StoreConfig
	logger        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	listingCache *cache.ListingCache,
	emailService mailer.IEmailService,
	natsPublisher *nats.Publisher,
	storeConfig config.StoreConfig,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:        pubSub,
		listingCache:  listingCache,
		emailService:  emailService,
		natsPublisher: natsPublisher,
		storeConfig:   storeConfig,
		logger:        sysLogger,
	}
}

func (s *consumerService) Consume(ctx context.Context) error {
	settingsMessages, err := s.pubSub.Subscribe(ctx, s.storeConfig.SettingsUpdatedTopic)
	if err != nil {
		return err
	}
	stockMessages, err := s.pubSub.Subscribe(ctx, s.storeConfig.StockChangedTopic)
	if err != nil {
		return err
	}

	go s.processSettingsUpdated(ctx, settingsMessages)
	go s.processStockChanged(ctx, stockMessages)

	s.logger.Info("ConsumerService", "Event consumers started", map[string]interface{}{
		"topics": []string{s.storeConfig.SettingsUpdatedTopic, s.storeConfig.StockChangedTopic},
	})
	return nil
}

func (s *consumerService) processSettingsUpdated(ctx context.Context, messages <-chan *message.Message) {
	for msg := range messages {
		s.listingCache.Invalidate(ctx)

		var payload map[string]interface{}
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			s.logger.Error("ConsumerService", "Malformed settings update payload", map[string]interface{}{"error": err.Error()})
			msg.Ack()
			continue
		}

		s.mirrorToNats(ctx, events.NewBaseEvent(events.TypeSettingsUpdated, payload))
		msg.Ack()
	}
}

func (s *consumerService) processStockChanged(ctx context.Context, messages <-chan *message.Message) {
	for msg := range messages {
		s.listingCache.Invalidate(ctx)

		var payload map[string]interface{}
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			s.logger.Error("ConsumerService", "Malformed stock change payload", map[string]interface{}{"error": err.Error()})
			msg.Ack()
			continue
		}

		if newStatus, ok := payload["new_status"].(string); ok && newStatus == string(entity.StockStatusOutOfStock) {
			s.alertOwner(payload)
		}

		s.mirrorToNats(ctx, events.NewBaseEvent(events.TypeStockChanged, payload))
		msg.Ack()
	}
}

func (s *consumerService) alertOwner(payload map[string]interface{}) {
	if s.storeConfig.OwnerEmail == "" {
		return
	}

	productName, _ := payload["product_name"].(string)
	quantity := 0
	if q, ok := payload["quantity"].(float64); ok {
		quantity = int(q)
	}

	if err := s.emailService.SendOutOfStockAlert(s.storeConfig.OwnerEmail, productName, quantity); err != nil {
		s.logger.Error("ConsumerService", "Failed to send out-of-stock alert", map[string]interface{}{
			"product_name": productName,
			"error":        err.Error(),
		})
	}
}

func (s *consumerService) mirrorToNats(ctx context.Context, event events.Event) {
	if s.natsPublisher == nil {
		return
	}
	if err := s.natsPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("ConsumerService", "Failed to mirror event to NATS", map[string]interface{}{
			"event_type": event.EventType(),
			"error":      err.Error(),
		})
	}
}

package service

import (
	"context"
	"encoding/json"

	"stock-visibility-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IPublisherService publishes domain events onto the in-process bus.
type IPublisherService interface {
	PublishSettingsUpdated(ctx context.Context, payload *dto.SettingsUpdatedMessage) error
	PublishStockChanged(ctx context.Context, payload *dto.StockChangedMessage) error
}

type publisherService struct {
	pubSub        *gochannel.GoChannel
	settingsTopic string
	stockTopic    string
}

func NewPublisherService(pubSub *gochannel.GoChannel, settingsTopic, stockTopic string) IPublisherService {
	return &publisherService{
		pubSub:        pubSub,
		settingsTopic: settingsTopic,
		stockTopic:    stockTopic,
	}
}

func (s *publisherService) PublishSettingsUpdated(ctx context.Context, payload *dto.SettingsUpdatedMessage) error {
	return s.publish(s.settingsTopic, payload)
}

func (s *publisherService) PublishStockChanged(ctx context.Context, payload *dto.StockChangedMessage) error {
	return s.publish(s.stockTopic, payload)
}

func (s *publisherService) publish(topic string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), raw)
	return s.pubSub.Publish(topic, msg)
}

package bootstrap

import (
	"context"
	"log"
	"time"

	"stock-visibility-be/internal/config"
	"stock-visibility-be/internal/controller"
	"stock-visibility-be/internal/handler"
	"stock-visibility-be/internal/pkg/cache"
	"stock-visibility-be/internal/pkg/logger"
	"stock-visibility-be/internal/pkg/mailer"
	"stock-visibility-be/internal/repository/memory"
	"stock-visibility-be/internal/repository/unitofwork"
	"stock-visibility-be/internal/service"
	"stock-visibility-be/internal/websocket"

	pktNats "stock-visibility-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	CatalogController      controller.ICatalogController
	AdminCatalogController controller.IAdminCatalogController
	SettingsController     controller.ISettingsController

	// Background Services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	listingCache := cache.NewListingCache(rdb, time.Duration(cfg.Store.ListingCacheTTLSecs)*time.Second)

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	loginAttempts := memory.NewLoginAttemptRepository()

	publisherService := service.NewPublisherService(pubSub, cfg.Store.SettingsUpdatedTopic, cfg.Store.StockChangedTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		listingCache,
		emailService,
		natsPub,
		cfg.Store,
		sysLogger,
	)

	visibilityService := service.NewVisibilityService(uowFactory)
	catalogService := service.NewCatalogService(uowFactory, visibilityService, publisherService, listingCache, sysLogger)
	settingsService := service.NewSettingsService(uowFactory, visibilityService, publisherService, listingCache, sysLogger)
	authService := service.NewAuthService(uowFactory, loginAttempts, sysLogger)

	// 3.5 Notification System
	notifService := service.NewNotificationService(uowFactory, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery
	if natsSub != nil {
		go notifService.Start()
	}
	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		CatalogController:      controller.NewCatalogController(catalogService),
		AdminCatalogController: controller.NewAdminCatalogController(catalogService),
		SettingsController:     controller.NewSettingsController(settingsService),

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		ConsumerService: consumerService,
	}
}

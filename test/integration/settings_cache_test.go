package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"stock-visibility-be/internal/dto"
	"stock-visibility-be/internal/pkg/cache"
	"stock-visibility-be/internal/pkg/logger"
	"stock-visibility-be/internal/repository/unitofwork"
	"stock-visibility-be/internal/service"
	"stock-visibility-be/pkg/database"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// TestSettingsUpdateInvalidatesListingCache verifies a settings replace bumps
// the listing cache generation in the same request, not via the async event.
func TestSettingsUpdateInvalidatesListingCache(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}
	rdb := redis.NewClient(opt)
	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		t.Skipf("Skipping integration test: Redis unavailable: %v", err)
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	visibility := service.NewVisibilityService(uowFactory)
	listingCache := cache.NewListingCache(rdb, 60*time.Second)
	publisher := service.NewPublisherService(
		gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false)),
		"SETTINGS_TOPIC_TEST",
		"STOCK_TOPIC_TEST",
	)
	settingsService := service.NewSettingsService(
		uowFactory,
		visibility,
		publisher,
		listingCache,
		logger.NewIsolatedLogger("logs/integration_test.log"),
	)

	before := listingCache.Key(ctx, "shop:::20:0")
	assert.NotEmpty(t, before)

	_, err = settingsService.UpdateStockVisibility(ctx, "integration-test", &dto.UpdateStockVisibilityRequest{
		DisplayMode: "label",
	})
	assert.NoError(t, err)

	after := listingCache.Key(ctx, "shop:::20:0")
	assert.NotEmpty(t, after)
	assert.NotEqual(t, before, after, "settings replace should orphan cached listings immediately")
}

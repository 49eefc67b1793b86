package service

import (
	"context"

	"stock-visibility-be/internal/dto"
	"stock-visibility-be/internal/entity"
	"stock-visibility-be/internal/mapper"
	"stock-visibility-be/internal/pkg/cache"
	"stock-visibility-be/internal/pkg/logger"
	"stock-visibility-be/internal/repository/unitofwork"
)

type ISettingsService interface {
	GetStockVisibility(ctx context.Context) (*dto.StockVisibilitySettingsResponse, error)
	UpdateStockVisibility(ctx context.Context, updatedBy string, req *dto.UpdateStockVisibilityRequest) (*dto.StockVisibilitySettingsResponse, error)
}

type settingsService struct {
	uowFactory       unitofwork.RepositoryFactory
	visibility       IVisibilityService
	publisherService IPublisherService
	listingCache     *cache.ListingCache
	mapper           *mapper.StockVisibilityMapper
	logger           logger.ILogger
}

func NewSettingsService(
	uowFactory unitofwork.RepositoryFactory,
	visibility IVisibilityService,
	publisherService IPublisherService,
	listingCache *cache.ListingCache,
	sysLogger logger.ILogger,
) ISettingsService {
	return &settingsService{
		uowFactory:       uowFactory,
		visibility:       visibility,
		publisherService: publisherService,
		listingCache:     listingCache,
		mapper:           mapper.NewStockVisibilityMapper(),
		logger:           sysLogger,
	}
}

func (s *settingsService) GetStockVisibility(ctx context.Context) (*dto.StockVisibilitySettingsResponse, error) {
	settings, err := s.visibility.ResolveSettings(ctx)
	if err != nil {
		return nil, err
	}
	return settingsToResponse(settings), nil
}

// UpdateStockVisibility replaces the whole settings record, mirroring the
// settings form submit. ID lists are stored verbatim; tokens that do not
// match a real product or category simply never match in the query layer.
func (s *settingsService) UpdateStockVisibility(ctx context.Context, updatedBy string, req *dto.UpdateStockVisibilityRequest) (*dto.StockVisibilitySettingsResponse, error) {
	settings := &entity.StockVisibilitySettings{
		DisplayMode:        entity.DisplayMode(req.DisplayMode),
		OutOfStockLabel:    req.OutOfStockLabel,
		ExcludedProductIDs: req.ExcludedProductIDs,
		HiddenCategoryIDs:  req.HiddenCategoryIDs,
		PageFlags:          make(map[entity.PageType]bool, len(req.PageFlags)),
	}
	for page, flag := range req.PageFlags {
		settings.PageFlags[entity.PageType(page)] = flag
	}

	option, err := s.mapper.ToOption(settings)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.OptionRepository().Put(ctx, option); err != nil {
		return nil, err
	}

	// Invalidate synchronously so listings never serve the old rules for a
	// full TTL; the event below only feeds the NATS mirror and notifications
	s.listingCache.Invalidate(ctx)

	s.logger.Info("SettingsService", "Stock visibility settings replaced", map[string]interface{}{
		"display_mode": req.DisplayMode,
		"updated_by":   updatedBy,
	})

	if err := s.publisherService.PublishSettingsUpdated(ctx, &dto.SettingsUpdatedMessage{
		DisplayMode: req.DisplayMode,
		UpdatedBy:   updatedBy,
	}); err != nil {
		s.logger.Warn("SettingsService", "Failed to publish settings update event", map[string]interface{}{"error": err.Error()})
	}

	return settingsToResponse(settings), nil
}

func settingsToResponse(settings *entity.StockVisibilitySettings) *dto.StockVisibilitySettingsResponse {
	pageFlags := make(map[string]bool, len(settings.PageFlags))
	for page, flag := range settings.PageFlags {
		pageFlags[string(page)] = flag
	}
	return &dto.StockVisibilitySettingsResponse{
		DisplayMode:        string(settings.DisplayMode),
		OutOfStockLabel:    settings.OutOfStockLabel,
		ExcludedProductIDs: settings.ExcludedProductIDs,
		HiddenCategoryIDs:  settings.HiddenCategoryIDs,
		PageFlags:          pageFlags,
	}
}

package service

import (
	"context"

	"stock-visibility-be/internal/entity"
	"stock-visibility-be/internal/mapper"
	"stock-visibility-be/internal/repository/specification"
	"stock-visibility-be/internal/repository/unitofwork"
)

// IVisibilityService is the stock visibility rule layer. It owns three
// things: loading the settings record into its typed form, deciding which
// filtering predicates a storefront listing gets, and decorating
// availability text.
type IVisibilityService interface {
	// ResolveSettings reads the settings record fresh from storage and
	// returns the typed, defaulted form. Callers pass the result into the
	// other methods explicitly; nothing is cached between requests.
	ResolveSettings(ctx context.Context) (*entity.StockVisibilitySettings, error)

	// ListingSpecifications returns the query predicates to append to a
	// product listing. An empty slice means pass-through.
	ListingSpecifications(settings *entity.StockVisibilitySettings, listing entity.ListingContext) []specification.Specification

	// AvailabilityLabel decorates a product's availability text.
	AvailabilityLabel(settings *entity.StockVisibilitySettings, defaultText string, status entity.StockStatus) string
}

type visibilityService struct {
	uowFactory unitofwork.RepositoryFactory
	mapper     *mapper.StockVisibilityMapper
}

func NewVisibilityService(uowFactory unitofwork.RepositoryFactory) IVisibilityService {
	return &visibilityService{
		uowFactory: uowFactory,
		mapper:     mapper.NewStockVisibilityMapper(),
	}
}

func (s *visibilityService) ResolveSettings(ctx context.Context) (*entity.StockVisibilitySettings, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	option, err := uow.OptionRepository().Get(ctx, entity.OptionKeyStockVisibility)
	if err != nil {
		return nil, err
	}
	// Absent record resolves to defaults; the mapper handles both
	return s.mapper.FromOption(option), nil
}

// ListingSpecifications implements the hide decision.
//
// Precedence, highest first: explicit product-ID exemption > hide-by-category
// > hide-by-page > pass-through. The exemption tokens are threaded into every
// predicate so an exempted product survives both the page and the category
// rule.
//
// When no page flag is set at all, hiding applies on every page type
// (the single-switch predecessor behavior). An explicit false flag and an
// absent flag are equivalent.
func (s *visibilityService) ListingSpecifications(settings *entity.StockVisibilitySettings, listing entity.ListingContext) []specification.Specification {
	// Admin listings and auxiliary queries are never filtered
	if listing.IsAdmin || !listing.IsPrimary {
		return nil
	}

	// Only the hide mode filters; label and backorder modes affect
	// availability text only
	if settings.DisplayMode != entity.DisplayModeHide {
		return nil
	}

	exempt := settings.ExcludedProductTokens()
	specs := make([]specification.Specification, 0, 2)

	hideOnPage := settings.HiddenFromPage(listing.PageType) || !settings.HasAnyPageFlag()
	if hideOnPage {
		specs = append(specs, specification.VisibleStock{ExemptIDTokens: exempt})
	}

	if hiddenCategories := settings.HiddenCategoryTokens(); len(hiddenCategories) > 0 {
		specs = append(specs, specification.NotHiddenByCategory{
			CategoryIDTokens: hiddenCategories,
			ExemptIDTokens:   exempt,
		})
	}

	return specs
}

func (s *visibilityService) AvailabilityLabel(settings *entity.StockVisibilitySettings, defaultText string, status entity.StockStatus) string {
	if status == entity.StockStatusInStock {
		return defaultText
	}
	if settings.OutOfStockLabel != "" {
		return settings.OutOfStockLabel
	}
	return entity.DefaultOutOfStockLabel
}

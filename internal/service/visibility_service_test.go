package service

import (
	"testing"

	"stock-visibility-be/internal/entity"
	"stock-visibility-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
)

func storefront(page entity.PageType) entity.ListingContext {
	return entity.ListingContext{PageType: page, IsPrimary: true}
}

func TestListingSpecificationsPassThrough(t *testing.T) {
	svc := NewVisibilityService(nil)

	tests := []struct {
		name     string
		settings *entity.StockVisibilitySettings
		listing  entity.ListingContext
	}{
		{
			name:     "label mode never filters",
			settings: &entity.StockVisibilitySettings{DisplayMode: entity.DisplayModeLabel},
			listing:  storefront(entity.PageTypeShop),
		},
		{
			name:     "backorder mode never filters",
			settings: &entity.StockVisibilitySettings{DisplayMode: entity.DisplayModeBackorder},
			listing:  storefront(entity.PageTypeShop),
		},
		{
			name:     "admin listing never filtered",
			settings: entity.DefaultStockVisibilitySettings(),
			listing:  entity.ListingContext{PageType: entity.PageTypeShop, IsAdmin: true, IsPrimary: true},
		},
		{
			name:     "auxiliary query never filtered",
			settings: entity.DefaultStockVisibilitySettings(),
			listing:  entity.ListingContext{PageType: entity.PageTypeShop, IsPrimary: false},
		},
		{
			name: "hide mode with flag for another page only",
			settings: &entity.StockVisibilitySettings{
				DisplayMode: entity.DisplayModeHide,
				PageFlags:   map[entity.PageType]bool{entity.PageTypeSearch: true},
			},
			listing: storefront(entity.PageTypeShop),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs := svc.ListingSpecifications(tt.settings, tt.listing)
			assert.Empty(t, specs)
		})
	}
}

func TestListingSpecificationsHideMode(t *testing.T) {
	svc := NewVisibilityService(nil)

	t.Run("no page flags hides everywhere", func(t *testing.T) {
		settings := entity.DefaultStockVisibilitySettings()

		for _, page := range []entity.PageType{entity.PageTypeShop, entity.PageTypeSearch, entity.PageTypeCategory, entity.PageTypeOther} {
			specs := svc.ListingSpecifications(settings, storefront(page))
			assert.Len(t, specs, 1, "page %s", page)
			assert.IsType(t, specification.VisibleStock{}, specs[0])
		}
	})

	t.Run("flagged page gets stock predicate", func(t *testing.T) {
		settings := &entity.StockVisibilitySettings{
			DisplayMode: entity.DisplayModeHide,
			PageFlags:   map[entity.PageType]bool{entity.PageTypeShop: true},
		}

		specs := svc.ListingSpecifications(settings, storefront(entity.PageTypeShop))
		assert.Len(t, specs, 1)
		assert.IsType(t, specification.VisibleStock{}, specs[0])
	})

	t.Run("exemption tokens flow into predicate", func(t *testing.T) {
		settings := &entity.StockVisibilitySettings{
			DisplayMode:        entity.DisplayModeHide,
			ExcludedProductIDs: "11, 42",
			PageFlags:          map[entity.PageType]bool{entity.PageTypeShop: true},
		}

		specs := svc.ListingSpecifications(settings, storefront(entity.PageTypeShop))
		assert.Len(t, specs, 1)
		visible, ok := specs[0].(specification.VisibleStock)
		assert.True(t, ok)
		assert.Equal(t, []string{"11", "42"}, visible.ExemptIDTokens)
	})

	t.Run("hidden categories apply on unflagged pages", func(t *testing.T) {
		settings := &entity.StockVisibilitySettings{
			DisplayMode:       entity.DisplayModeHide,
			HiddenCategoryIDs: "7",
			PageFlags:         map[entity.PageType]bool{entity.PageTypeSearch: true},
		}

		// Shop is not flagged: only the category predicate applies
		specs := svc.ListingSpecifications(settings, storefront(entity.PageTypeShop))
		assert.Len(t, specs, 1)
		assert.IsType(t, specification.NotHiddenByCategory{}, specs[0])

		// Search is flagged: both predicates apply
		specs = svc.ListingSpecifications(settings, storefront(entity.PageTypeSearch))
		assert.Len(t, specs, 2)
		assert.IsType(t, specification.VisibleStock{}, specs[0])
		assert.IsType(t, specification.NotHiddenByCategory{}, specs[1])
	})

	t.Run("exemptions reach the category predicate", func(t *testing.T) {
		settings := &entity.StockVisibilitySettings{
			DisplayMode:        entity.DisplayModeHide,
			ExcludedProductIDs: "42",
			HiddenCategoryIDs:  "7, 8",
			PageFlags:          map[entity.PageType]bool{entity.PageTypeShop: true},
		}

		specs := svc.ListingSpecifications(settings, storefront(entity.PageTypeShop))
		assert.Len(t, specs, 2)
		byCategory, ok := specs[1].(specification.NotHiddenByCategory)
		assert.True(t, ok)
		assert.Equal(t, []string{"7", "8"}, byCategory.CategoryIDTokens)
		assert.Equal(t, []string{"42"}, byCategory.ExemptIDTokens)
	})
}

func TestAvailabilityLabel(t *testing.T) {
	svc := NewVisibilityService(nil)

	tests := []struct {
		name     string
		settings *entity.StockVisibilitySettings
		status   entity.StockStatus
		text     string
		want     string
	}{
		{
			name:     "in stock keeps default text",
			settings: &entity.StockVisibilitySettings{OutOfStockLabel: "Gone"},
			status:   entity.StockStatusInStock,
			text:     "In stock",
			want:     "In stock",
		},
		{
			name:     "out of stock with custom label",
			settings: &entity.StockVisibilitySettings{OutOfStockLabel: "Gone"},
			status:   entity.StockStatusOutOfStock,
			text:     "Out of stock",
			want:     "Gone",
		},
		{
			name:     "out of stock without label falls back",
			settings: &entity.StockVisibilitySettings{},
			status:   entity.StockStatusOutOfStock,
			text:     "Out of stock",
			want:     entity.DefaultOutOfStockLabel,
		},
		{
			name:     "backorder also gets the label",
			settings: &entity.StockVisibilitySettings{OutOfStockLabel: "Ships later"},
			status:   entity.StockStatusOnBackorder,
			text:     "Available on backorder",
			want:     "Ships later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.AvailabilityLabel(tt.settings, tt.text, tt.status)
			assert.Equal(t, tt.want, got)
		})
	}
}

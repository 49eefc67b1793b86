package mapper

import (
	"testing"

	"stock-visibility-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestFromOptionDefaults(t *testing.T) {
	m := NewStockVisibilityMapper()

	t.Run("nil option yields defaults", func(t *testing.T) {
		s := m.FromOption(nil)
		assert.Equal(t, entity.DisplayModeHide, s.DisplayMode)
		assert.Empty(t, s.OutOfStockLabel)
		assert.False(t, s.HasAnyPageFlag())
	})

	t.Run("empty value yields defaults", func(t *testing.T) {
		s := m.FromOption(&entity.StoreOption{Key: entity.OptionKeyStockVisibility})
		assert.Equal(t, entity.DisplayModeHide, s.DisplayMode)
	})

	t.Run("unparseable value yields defaults", func(t *testing.T) {
		s := m.FromOption(&entity.StoreOption{
			Key:   entity.OptionKeyStockVisibility,
			Value: []byte("not json"),
		})
		assert.Equal(t, entity.DisplayModeHide, s.DisplayMode)
		assert.Empty(t, s.ExcludedProductTokens())
	})

	t.Run("unknown display mode falls back to hide", func(t *testing.T) {
		s := m.FromOption(&entity.StoreOption{
			Key:   entity.OptionKeyStockVisibility,
			Value: []byte(`{"display_mode":"vanish"}`),
		})
		assert.Equal(t, entity.DisplayModeHide, s.DisplayMode)
	})

	t.Run("full record round-trips", func(t *testing.T) {
		in := &entity.StockVisibilitySettings{
			DisplayMode:        entity.DisplayModeLabel,
			OutOfStockLabel:    "Sold out!",
			ExcludedProductIDs: "1, 2",
			HiddenCategoryIDs:  "7",
			PageFlags: map[entity.PageType]bool{
				entity.PageTypeShop:   true,
				entity.PageTypeSearch: false,
			},
		}

		option, err := m.ToOption(in)
		assert.NoError(t, err)
		assert.Equal(t, entity.OptionKeyStockVisibility, option.Key)

		out := m.FromOption(option)
		assert.Equal(t, entity.DisplayModeLabel, out.DisplayMode)
		assert.Equal(t, "Sold out!", out.OutOfStockLabel)
		assert.Equal(t, []string{"1", "2"}, out.ExcludedProductTokens())
		assert.Equal(t, []string{"7"}, out.HiddenCategoryTokens())
		assert.True(t, out.HiddenFromPage(entity.PageTypeShop))
		assert.False(t, out.HiddenFromPage(entity.PageTypeSearch))
	})
}

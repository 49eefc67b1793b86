package mapper

import (
	"encoding/json"

	"stock-visibility-be/internal/entity"
)

// stockVisibilityRecord is the raw stored mapping, key for key what the
// settings form submits. Page flags absent from the payload default to false.
type stockVisibilityRecord struct {
	DisplayMode        string          `json:"display_mode"`
	OutOfStockLabel    string          `json:"out_of_stock_label"`
	ExcludedProductIDs string          `json:"excluded_product_ids"`
	HiddenCategoryIDs  string          `json:"hidden_category_ids"`
	PageFlags          map[string]bool `json:"page_flags"`
}

// StockVisibilityMapper converts between the stored option JSON and the typed
// settings entity, applying defaults at load time so downstream code never
// re-defaults individual keys.
type StockVisibilityMapper struct{}

func NewStockVisibilityMapper() *StockVisibilityMapper {
	return &StockVisibilityMapper{}
}

// FromOption parses a stored option value. A nil option (record absent) or an
// unparseable value yields the documented defaults.
func (m *StockVisibilityMapper) FromOption(option *entity.StoreOption) *entity.StockVisibilitySettings {
	settings := entity.DefaultStockVisibilitySettings()
	if option == nil || len(option.Value) == 0 {
		return settings
	}

	var record stockVisibilityRecord
	if err := json.Unmarshal(option.Value, &record); err != nil {
		return settings
	}

	switch entity.DisplayMode(record.DisplayMode) {
	case entity.DisplayModeHide, entity.DisplayModeLabel, entity.DisplayModeBackorder:
		settings.DisplayMode = entity.DisplayMode(record.DisplayMode)
	}
	settings.OutOfStockLabel = record.OutOfStockLabel
	settings.ExcludedProductIDs = record.ExcludedProductIDs
	settings.HiddenCategoryIDs = record.HiddenCategoryIDs

	for page, flag := range record.PageFlags {
		settings.PageFlags[entity.PageType(page)] = flag
	}

	return settings
}

// ToOption serializes typed settings back into the option row (whole-record
// replace).
func (m *StockVisibilityMapper) ToOption(settings *entity.StockVisibilitySettings) (*entity.StoreOption, error) {
	record := stockVisibilityRecord{
		DisplayMode:        string(settings.DisplayMode),
		OutOfStockLabel:    settings.OutOfStockLabel,
		ExcludedProductIDs: settings.ExcludedProductIDs,
		HiddenCategoryIDs:  settings.HiddenCategoryIDs,
		PageFlags:          make(map[string]bool, len(settings.PageFlags)),
	}
	for page, flag := range settings.PageFlags {
		record.PageFlags[string(page)] = flag
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	return &entity.StoreOption{
		Key:   entity.OptionKeyStockVisibility,
		Value: raw,
	}, nil
}

package dto

// StockVisibilitySettingsResponse mirrors the stored settings record.
type StockVisibilitySettingsResponse struct {
	DisplayMode        string          `json:"display_mode"`
	OutOfStockLabel    string          `json:"out_of_stock_label"`
	ExcludedProductIDs string          `json:"excluded_product_ids"`
	HiddenCategoryIDs  string          `json:"hidden_category_ids"`
	PageFlags          map[string]bool `json:"page_flags"`
}

// UpdateStockVisibilityRequest replaces the whole settings record, exactly
// like the settings form submit.
type UpdateStockVisibilityRequest struct {
	DisplayMode        string          `json:"display_mode" validate:"required,oneof=hide label backorder"`
	OutOfStockLabel    string          `json:"out_of_stock_label"`
	ExcludedProductIDs string          `json:"excluded_product_ids"`
	HiddenCategoryIDs  string          `json:"hidden_category_ids"`
	PageFlags          map[string]bool `json:"page_flags" validate:"omitempty,dive,keys,oneof=shop search category,endkeys"`
}

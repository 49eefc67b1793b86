package entity

import "time"

// OptionKeyStockVisibility is the fixed key the stock visibility record is
// stored under.
const OptionKeyStockVisibility = "stock_visibility_settings"

type StoreOption struct {
	Key       string
	Value     []byte
	UpdatedAt *time.Time
}

package dto

import "github.com/google/uuid"

// StockChangedMessage is the payload published when a product's stock
// status changes through the admin API.
type StockChangedMessage struct {
	ProductId   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
	Quantity    int       `json:"quantity"`
}

// SettingsUpdatedMessage is the payload published after the stock visibility
// record is replaced.
type SettingsUpdatedMessage struct {
	DisplayMode string `json:"display_mode"`
	UpdatedBy   string `json:"updated_by"`
}

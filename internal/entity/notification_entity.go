package entity

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	Id        uuid.UUID
	TypeCode  string
	Title     string
	Message   string
	Metadata  map[string]interface{}
	IsRead    bool
	CreatedAt time.Time
}

const (
	NotificationStockChanged    = "STOCK_CHANGED"
	NotificationSettingsUpdated = "SETTINGS_UPDATED"
)

package model

import (
	"time"

	"gorm.io/datatypes"
)

// StoreOption is a generic key-value settings row. The stock visibility
// record lives under a single fixed key and is replaced whole on update.
type StoreOption struct {
	Key       string         `gorm:"type:varchar(100);primaryKey"`
	Value     datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (StoreOption) TableName() string {
	return "store_options"
}

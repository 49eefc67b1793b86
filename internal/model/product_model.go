package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string         `gorm:"type:varchar(255);not null"`
	Slug          string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description   string         `gorm:"type:text"`
	Price         float64        `gorm:"type:numeric(12,2);not null;default:0"`
	StockStatus   string         `gorm:"type:varchar(20);not null;default:'instock';index"` // instock, outofstock, onbackorder
	StockQuantity int            `gorm:"default:0"`
	Status        string         `gorm:"type:varchar(20);not null;default:'published';index"` // published, draft
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}

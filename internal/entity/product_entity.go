package entity

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id            uuid.UUID
	Name          string
	Slug          string
	Description   string
	Price         float64
	StockStatus   StockStatus
	StockQuantity int
	Status        string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}

const (
	ProductStatusPublished = "published"
	ProductStatusDraft     = "draft"
)

// DefaultAvailabilityText is the host-side default string for a stock state,
// before the label decorator is applied.
func (p *Product) DefaultAvailabilityText() string {
	switch p.StockStatus {
	case StockStatusInStock:
		return "In stock"
	case StockStatusOnBackorder:
		return "Available on backorder"
	default:
		return "Out of stock"
	}
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type ListProductsRequest struct {
	PageType   string     `query:"page_type" validate:"omitempty,oneof=shop search category"`
	CategoryId *uuid.UUID `query:"category_id"`
	Query      string     `query:"q"`
	Limit      int        `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset     int        `query:"offset" validate:"omitempty,min=0"`
}

type ProductResponse struct {
	Id               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Slug             string     `json:"slug"`
	Description      string     `json:"description,omitempty"`
	Price            float64    `json:"price"`
	StockStatus      string     `json:"stock_status"`
	AvailabilityText string     `json:"availability_text"`
	Purchasable      bool       `json:"purchasable"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

type ListProductsResponse struct {
	Products []*ProductResponse `json:"products"`
	Total    int64              `json:"total"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}

type AdminProductResponse struct {
	Id            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	Price         float64    `json:"price"`
	StockStatus   string     `json:"stock_status"`
	StockQuantity int        `json:"stock_quantity"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type AdminListProductsRequest struct {
	StockStatus string `query:"stock_status" validate:"omitempty,oneof=instock outofstock onbackorder"`
	Limit       int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset      int    `query:"offset" validate:"omitempty,min=0"`
}

type AdminListProductsResponse struct {
	Products []*AdminProductResponse `json:"products"`
	Total    int64                   `json:"total"`
	Limit    int                     `json:"limit"`
	Offset   int                     `json:"offset"`
}

type CreateProductRequest struct {
	Name          string      `json:"name" validate:"required"`
	Slug          string      `json:"slug" validate:"required"`
	Description   string      `json:"description"`
	Price         float64     `json:"price" validate:"min=0"`
	StockStatus   string      `json:"stock_status" validate:"omitempty,oneof=instock outofstock onbackorder"`
	StockQuantity int         `json:"stock_quantity" validate:"min=0"`
	CategoryIds   []uuid.UUID `json:"category_ids"`
}

type UpdateStockRequest struct {
	StockStatus   string `json:"stock_status" validate:"required,oneof=instock outofstock onbackorder"`
	StockQuantity int    `json:"stock_quantity" validate:"min=0"`
}

type CategoryResponse struct {
	Id       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	ParentId *uuid.UUID `json:"parent_id,omitempty"`
}

package specification

import (
	"stock-visibility-be/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Published restricts to storefront-visible products.
type Published struct{}

func (s Published) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("products.status = ?", entity.ProductStatusPublished)
}

// StockStatusIs filters by exact stock status.
type StockStatusIs struct {
	Status entity.StockStatus
}

func (s StockStatusIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("products.stock_status = ?", string(s.Status))
}

// InCategory restricts to members of one category (the category listing page).
type InCategory struct {
	CategoryID uuid.UUID
}

func (s InCategory) Apply(db *gorm.DB) *gorm.DB {
	sub := db.Session(&gorm.Session{NewDB: true}).
		Table("product_categories").
		Select("product_id").
		Where("category_id = ?", s.CategoryID)
	return db.Where("products.id IN (?)", sub)
}

// NameSearch matches the storefront search box against name and description.
type NameSearch struct {
	Query string
}

func (s NameSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("products.name ILIKE ? OR products.description ILIKE ?", pattern, pattern)
}

// VisibleStock is the hide-by-page predicate: only in-stock products pass,
// except IDs the owner explicitly exempted. Exemption tokens are matched
// against the text form of the ID so malformed tokens simply never match.
type VisibleStock struct {
	ExemptIDTokens []string
}

func (s VisibleStock) Apply(db *gorm.DB) *gorm.DB {
	if len(s.ExemptIDTokens) == 0 {
		return db.Where("products.stock_status = ?", string(entity.StockStatusInStock))
	}
	return db.Where(
		"products.stock_status = ? OR CAST(products.id AS TEXT) IN ?",
		string(entity.StockStatusInStock), s.ExemptIDTokens,
	)
}

// NotHiddenByCategory is the hide-by-category predicate: products that are
// not in stock AND belong to one of the hidden categories are excluded,
// unless exempted by ID. Applies on every page type.
type NotHiddenByCategory struct {
	CategoryIDTokens []string
	ExemptIDTokens   []string
}

func (s NotHiddenByCategory) Apply(db *gorm.DB) *gorm.DB {
	sub := db.Session(&gorm.Session{NewDB: true}).
		Table("product_categories").
		Select("product_id").
		Where("CAST(category_id AS TEXT) IN ?", s.CategoryIDTokens)

	if len(s.ExemptIDTokens) == 0 {
		return db.Where(
			"products.stock_status = ? OR products.id NOT IN (?)",
			string(entity.StockStatusInStock), sub,
		)
	}
	return db.Where(
		"products.stock_status = ? OR products.id NOT IN (?) OR CAST(products.id AS TEXT) IN ?",
		string(entity.StockStatusInStock), sub, s.ExemptIDTokens,
	)
}

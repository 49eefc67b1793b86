package entity

import "strings"

type DisplayMode string

const (
	DisplayModeHide      DisplayMode = "hide"
	DisplayModeLabel     DisplayMode = "label"
	DisplayModeBackorder DisplayMode = "backorder"
)

type StockStatus string

const (
	StockStatusInStock     StockStatus = "instock"
	StockStatusOutOfStock  StockStatus = "outofstock"
	StockStatusOnBackorder StockStatus = "onbackorder"
)

type PageType string

const (
	PageTypeShop     PageType = "shop"
	PageTypeSearch   PageType = "search"
	PageTypeCategory PageType = "category"
	PageTypeOther    PageType = "other"
)

// DefaultOutOfStockLabel is shown for non-in-stock products when the store
// owner has not configured an override.
const DefaultOutOfStockLabel = "Out of Stock"

// StockVisibilitySettings is the typed form of the stock visibility option
// record. It is built fresh per request from storage, defaulted at load time,
// and passed explicitly into the visibility service (no ambient lookups).
//
// ExcludedProductIDs and HiddenCategoryIDs keep the raw comma-separated
// strings exactly as the owner entered them; the token accessors below derive
// the sets. Tokens stay opaque strings on purpose: a malformed token never
// matches a real ID in the query layer, which is the documented failure mode.
type StockVisibilitySettings struct {
	DisplayMode        DisplayMode
	OutOfStockLabel    string
	ExcludedProductIDs string
	HiddenCategoryIDs  string
	PageFlags          map[PageType]bool
}

func DefaultStockVisibilitySettings() *StockVisibilitySettings {
	return &StockVisibilitySettings{
		DisplayMode: DisplayModeHide,
		PageFlags:   map[PageType]bool{},
	}
}

// ExcludedProductTokens returns product ID tokens exempt from hiding.
// Exclusion-by-ID takes precedence over hide-by-category and hide-by-page.
func (s *StockVisibilitySettings) ExcludedProductTokens() []string {
	return splitIDTokens(s.ExcludedProductIDs)
}

// HiddenCategoryTokens returns category ID tokens whose out-of-stock members
// are excluded regardless of page type.
func (s *StockVisibilitySettings) HiddenCategoryTokens() []string {
	return splitIDTokens(s.HiddenCategoryIDs)
}

// HiddenFromPage reports the per-page opt-in flag, false when absent.
// Absent and explicit false are equivalent.
func (s *StockVisibilitySettings) HiddenFromPage(page PageType) bool {
	if s.PageFlags == nil {
		return false
	}
	return s.PageFlags[page]
}

// HasAnyPageFlag reports whether any listing page opted in to hiding. When
// none did, hiding falls back to every page (backward compatibility with the
// single-switch predecessor of the per-page flags).
func (s *StockVisibilitySettings) HasAnyPageFlag() bool {
	for _, page := range []PageType{PageTypeShop, PageTypeSearch, PageTypeCategory} {
		if s.PageFlags[page] {
			return true
		}
	}
	return false
}

func splitIDTokens(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// ListingContext describes the in-flight product listing a visibility
// decision is being made for.
type ListingContext struct {
	PageType PageType
	// IsAdmin marks listings served to the admin dashboard; those are never
	// filtered.
	IsAdmin bool
	// IsPrimary distinguishes the main storefront listing query from
	// auxiliary lookups (widgets, related-product blocks). Only the primary
	// query is filtered.
	IsPrimary bool
}

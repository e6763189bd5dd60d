// models/filters.go
package models

// Sort keys accepted by the catalog query engine.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// DefaultPriceCeiling bounds an open-ended price range to the slider maximum
// the storefront UI exposes.
const DefaultPriceCeiling = 100000

// IsValidSortKey checks whether the given string is an accepted sort key.
func IsValidSortKey(key string) bool {
	switch key {
	case SortNewest, SortPriceLow, SortPriceHigh, SortRating:
		return true
	}
	return false
}

// PriceRange represents a closed [Min, Max] price interval, inclusive on
// both ends. Max is a pointer so an explicit zero (only free items) stays
// distinct from an absent bound.
type PriceRange struct {
	Min float64  `json:"min"`
	Max *float64 `json:"max,omitempty"`
}

// Bounds returns the effective interval: a nil Max means the bound was
// never set and falls back to [0, DefaultPriceCeiling].
func (p PriceRange) Bounds() (min, max float64) {
	min = p.Min
	if min < 0 {
		min = 0
	}
	max = DefaultPriceCeiling
	if p.Max != nil {
		max = *p.Max
	}
	return min, max
}

// FilterCriteria holds everything a single browse interaction asks for.
// The zero value means "no restriction": every active item, newest first.
type FilterCriteria struct {
	PriceRange PriceRange `json:"price_range"`
	Categories []string   `json:"categories"`
	SearchText string     `json:"search_text"`
	SortKey    string     `json:"sort_key"`
}

// QueryResult is the shaped output of one engine run: the page of items
// plus the counts the grid header and pager need.
type QueryResult struct {
	Items      []CatalogItem `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"total_pages"`
}

// ═══════════════════════════════════════════════════════════
// Filter metadata (storefront filter rail)
// ═══════════════════════════════════════════════════════════

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Categories []FilterOption  `json:"categories"`
	PriceRange *PriceRangeData `json:"priceRange"`
}

// FilterOption represents a single filter option
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceRangeData represents the minimum and maximum price in the store
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

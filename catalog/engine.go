// Package catalog is the storefront's query engine: given the full
// in-memory list of catalog items and one browse interaction's filter,
// sort, and search parameters, it produces the filtered, ordered,
// paginated result the grid displays.
//
// The engine is pure. It performs no I/O, holds no state, and never
// mutates its input slice, so concurrent requests can safely share one
// catalog snapshot.
package catalog

import (
	"strings"

	"github.com/Aurelia-Jewels/aurelia-storefront-backend/models"
)

// Query returns the items passing every active predicate of criteria,
// ordered per its sort key. The result is a fresh slice; the input is
// never reordered or modified.
//
// Predicates are ANDed and applied cheapest-first: category membership,
// then price range, then the fuzzy text match, so most items are rejected
// before any edit distance is computed.
func Query(items []models.CatalogItem, criteria models.FilterCriteria) []models.CatalogItem {
	minPrice, maxPrice := criteria.PriceRange.Bounds()
	search := strings.TrimSpace(criteria.SearchText)

	var categories map[string]struct{}
	if len(criteria.Categories) > 0 {
		categories = make(map[string]struct{}, len(criteria.Categories))
		for _, name := range criteria.Categories {
			categories[name] = struct{}{}
		}
	}

	matched := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		if categories != nil {
			if _, ok := categories[item.Category]; !ok {
				continue
			}
		}
		// Inclusive on both ends; a missing price is the zero value and
		// simply falls outside any range with a positive minimum.
		if item.Price < minPrice || item.Price > maxPrice {
			continue
		}
		if search != "" && !MatchesName(item.Name, search) {
			continue
		}
		matched = append(matched, item)
	}

	sortItems(matched, criteria.SortKey)
	return matched
}

// Paginate shapes an already filtered and sorted list into one page.
// Page and limit are clamped the same way the storefront handlers clamp
// their query parameters.
func Paginate(items []models.CatalogItem, page, limit int) models.QueryResult {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit

	// The multiplication can overflow for an absurd page number; a
	// negative start clamps to the empty tail like any past-the-end page.
	start := (page - 1) * limit
	if start < 0 || start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return models.QueryResult{
		Items:      items[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

package catalog

import (
	"sort"

	"github.com/Aurelia-Jewels/aurelia-storefront-backend/models"
)

// sortItems orders items in place per the given sort key. Unknown or empty
// keys fall back to newest-first. Sorts are stable so repeated identical
// queries return identical sequences and price ties keep their input order.
func sortItems(items []models.CatalogItem, key string) {
	switch key {
	case models.SortPriceLow:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price < items[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price > items[j].Price
		})
	case models.SortRating:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating > items[j].Rating
		})
	default:
		// Newest first. A zero CreatedAt is before every real timestamp,
		// so items missing it sink to the end.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	}
}

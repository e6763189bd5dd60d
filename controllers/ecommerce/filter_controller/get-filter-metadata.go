package filter_controller

import (
	"log"
	"net/http"
	"sort"

	store_product "github.com/Aurelia-Jewels/aurelia-storefront-backend/controllers/ecommerce/product_controller"
	"github.com/Aurelia-Jewels/aurelia-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns category counts and the store-wide price range for the storefront filter rail
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	items, stale, err := store_product.LoadCatalog()
	if err != nil {
		log.Printf("ERROR loading catalog for filter metadata: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	metadata := buildFilterMetadata(items)

	if stale {
		c.JSON(http.StatusOK, models.WarningResponse(c, "Filter metadata fetched",
			"Serving last-known catalog; database is currently unreachable", metadata))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

// buildFilterMetadata derives the filter rail contents from the in-memory
// catalog: per-category item counts plus the min/max price across the store.
func buildFilterMetadata(items []models.CatalogItem) *models.FilterMetadata {
	counts := make(map[string]int)
	for _, item := range items {
		counts[item.Category]++
	}

	categories := make([]models.FilterOption, 0, len(counts))
	for name, count := range counts {
		categories = append(categories, models.FilterOption{
			Label: name,
			Value: name,
			Count: count,
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Label < categories[j].Label
	})

	metadata := &models.FilterMetadata{Categories: categories}

	if len(items) > 0 {
		priceRange := &models.PriceRangeData{Min: items[0].Price, Max: items[0].Price}
		for _, item := range items[1:] {
			if item.Price < priceRange.Min {
				priceRange.Min = item.Price
			}
			if item.Price > priceRange.Max {
				priceRange.Max = item.Price
			}
		}
		metadata.PriceRange = priceRange
	}

	return metadata
}

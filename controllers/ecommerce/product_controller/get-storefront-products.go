package product_controller

import (
	"log"
	"net/http"

	"github.com/Aurelia-Jewels/aurelia-storefront-backend/catalog"
	"github.com/Aurelia-Jewels/aurelia-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Browse storefront catalog
// @Description Retrieve active catalog items with optional fuzzy name search, category, price range, and sorting filters.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search query (fuzzy match on item name)"
// @Param category query []string false "Category names (repeatable)"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param sortBy query string false "Sort key (newest | price-low | price-high | rating)" default(newest)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	page, limit := parsePagination(c)
	criteria := parseFilterCriteria(c)

	items, stale, err := LoadCatalog()
	if err != nil {
		log.Printf("ERROR loading catalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	filtered := catalog.Query(items, criteria)
	result := catalog.Paginate(filtered, page, limit)

	cards := make([]models.StorefrontItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		cards = append(cards, models.StorefrontItemResponse{
			ID:            item.ID.String(),
			Name:          item.Name,
			Category:      item.Category,
			Image:         item.Image,
			Price:         item.Price,
			DiscountLabel: catalog.DiscountLabel(item.Price, item.CompareAtPrice),
		})
	}

	meta := &models.Pagination{
		Page:       result.Page,
		Limit:      result.Limit,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	}

	if stale {
		resp := models.WarningResponse(c, "Products fetched successfully",
			"Serving last-known catalog; database is currently unreachable", cards)
		resp.Meta = meta
		c.JSON(http.StatusOK, resp)
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", cards, meta))
}

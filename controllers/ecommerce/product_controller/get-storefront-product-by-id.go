package product_controller

import (
	"log"
	"net/http"

	"github.com/Aurelia-Jewels/aurelia-storefront-backend/catalog"
	"github.com/Aurelia-Jewels/aurelia-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProductByID godoc
// @Summary Get a single storefront item
// @Description Retrieve one active catalog item by its ID.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Catalog item ID"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	id := c.Param("id")

	items, stale, err := LoadCatalog()
	if err != nil {
		log.Printf("ERROR loading catalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	for _, item := range items {
		if item.ID.String() != id {
			continue
		}

		detail := models.StorefrontItemDetail{
			ID:             item.ID.String(),
			Name:           item.Name,
			Category:       item.Category,
			Image:          item.Image,
			Price:          item.Price,
			CompareAtPrice: item.CompareAtPrice,
			DiscountLabel:  catalog.DiscountLabel(item.Price, item.CompareAtPrice),
			Rating:         item.Rating,
			Tags:           item.Tags,
		}

		if stale {
			c.JSON(http.StatusOK, models.WarningResponse(c, "Product fetched successfully",
				"Serving last-known catalog; database is currently unreachable", detail))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", detail))
		return
	}

	c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
}

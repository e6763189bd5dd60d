package settings_controller

import (
	"errors"
	"log"
	"net/http"

	store_cache "github.com/Aurelia-Jewels/aurelia-storefront-backend/cache"
	"github.com/Aurelia-Jewels/aurelia-storefront-backend/config"
	"github.com/Aurelia-Jewels/aurelia-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetSettings godoc
// @Summary Get store settings
// @Description Retrieve the store configuration row. Served from cache when the database is unreachable.
// @Tags CMS - Settings
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.StoreSettings}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/settings [get]
func GetSettings(c *gin.Context) {
	// Try cache first
	if cached, pending, ok := store_cache.GetSettings(); ok {
		if pending {
			c.JSON(http.StatusOK, models.WarningResponse(c, "Settings fetched",
				"A recent update is still syncing to the database", cached))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings fetched", cached))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var settings models.StoreSettings
	err := config.StoreGorm.WithContext(ctx).First(&settings, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Fresh install: hand back defaults without persisting anything.
		settings = models.StoreSettings{ID: 1, StoreName: "Aurelia Jewels", CurrencyCode: "USD"}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings fetched", settings))
		return
	}
	if err != nil {
		log.Printf("ERROR fetching settings: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch settings"))
		return
	}

	store_cache.SetSettings(settings)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings fetched", settings))
}

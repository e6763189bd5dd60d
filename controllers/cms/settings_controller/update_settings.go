package settings_controller

import (
	"log"
	"net/http"

	store_cache "github.com/Aurelia-Jewels/aurelia-storefront-backend/cache"
	"github.com/Aurelia-Jewels/aurelia-storefront-backend/config"
	"github.com/Aurelia-Jewels/aurelia-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// UpdateSettings godoc
// @Summary Update store settings
// @Description Update the store configuration. The cache is updated immediately; if the database write fails the row is queued and replayed by the reconciler, and the response carries a sync-pending warning.
// @Tags CMS - Settings
// @Accept json
// @Produce json
// @Param settings body models.StoreSettingsRequest true "Settings payload"
// @Success 200 {object} models.ApiResponse{data=models.StoreSettings}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/settings [put]
func UpdateSettings(c *gin.Context) {
	var req models.StoreSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid settings payload: "+err.Error()))
		return
	}

	settings := models.StoreSettings{
		ID:               1,
		StoreName:        req.StoreName,
		AnnouncementText: req.AnnouncementText,
		CurrencyCode:     req.CurrencyCode,
		SupportEmail:     req.SupportEmail,
	}

	if err := PersistSettings(settings); err != nil {
		log.Printf("settings write failed, queueing for replay: %v", err)
		store_cache.QueueSettingsWrite(settings)
		c.JSON(http.StatusOK, models.WarningResponse(c, "Settings saved",
			"Database sync pending; the change will be replayed automatically", settings))
		return
	}

	store_cache.SetSettings(settings)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings saved", settings))
}

// PersistSettings upserts the single settings row. Also used by the cache
// reconciler to replay queued writes.
func PersistSettings(settings models.StoreSettings) error {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	return config.StoreGorm.
		WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&settings).Error
}

package cms_routes

import (
	"github.com/Aurelia-Jewels/aurelia-storefront-backend/controllers/cms/settings_controller"
	"github.com/gin-gonic/gin"
)

func SetupSettingsRoutes(router *gin.RouterGroup) {
	settings := router.Group("/settings")
	{
		settings.GET("", settings_controller.GetSettings)
		settings.PUT("", settings_controller.UpdateSettings)
	}
}

package ecommerce_routes

import (
	store_filter "github.com/Aurelia-Jewels/aurelia-storefront-backend/controllers/ecommerce/filter_controller"
	store_product "github.com/Aurelia-Jewels/aurelia-storefront-backend/controllers/ecommerce/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)        // Browse with filters
		products.GET("/:id", store_product.GetStorefrontProductByID) // Single product
	}

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)
}

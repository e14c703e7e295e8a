package ecommerce_routes

import (
	store_category "github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/category_controller"
	store_filter "github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/filter_controller"
	store_product "github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/product_controller"
	store_review "github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/review_controller"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes registers the catalog browsing routes. limit guards
// the routes that write.
func SetupStorefrontRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts) // List with filters
		products.GET("/featured", store_product.GetFeaturedProducts)
		products.GET("/:id", store_product.GetStorefrontProductByID) // Single product
		products.GET("/:id/similar", store_product.GetSimilarProducts)
		products.GET("/:id/reviews", store_review.GetReviews)
		products.POST("/:id/reviews", limit, store_review.AddReview)
	}

	store.GET("/categories", store_category.GetCategories)
	store.GET("/filters/metadata", store_filter.GetFilterMetadata)
	store.GET("/search/suggestions", store_product.GetSearchSuggestions)
}

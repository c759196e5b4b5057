package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/suraj-naithani/ecart-api/controllers/product"
	sellerControllers "github.com/suraj-naithani/ecart-api/controllers/seller"
	"github.com/suraj-naithani/ecart-api/middleware"
	"github.com/suraj-naithani/ecart-api/models"
	"github.com/suraj-naithani/ecart-api/services"
	"gorm.io/gorm"
)

// SetupProductRoutes registers the public catalog endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	productGroup := r.Group("/product")
	{
		productGroup.GET("", productcontroller.GetAllProducts(db))
		productGroup.GET("/search", productcontroller.SearchProducts(db))
		productGroup.GET("/:id", productcontroller.GetProduct(db))
	}
}

// SetupSellerRoutes registers the seller product management endpoints.
// Requires a valid token with the Seller role claim.
func SetupSellerRoutes(r *gin.Engine, db *gorm.DB, storage services.ImageStorage) {
	sellerGroup := r.Group("/seller")
	sellerGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleSeller))
	{
		sellerGroup.POST("/create-product", sellerControllers.CreateProduct(db, storage))
		sellerGroup.GET("/products", sellerControllers.GetMyProducts(db))
		sellerGroup.GET("/product/:id", sellerControllers.GetProductByID(db))
		sellerGroup.PUT("/update-product/:id", sellerControllers.UpdateProduct(db, storage))
		sellerGroup.DELETE("/delete-product/:id", sellerControllers.DeleteProduct(db, storage))
	}
}

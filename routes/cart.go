package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/suraj-naithani/ecart-api/controllers/cart"
	"github.com/suraj-naithani/ecart-api/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the authenticated cart endpoints.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.POST("/add-to-cart", cartControllers.AddToCart(db))
		cartGroup.GET("/cart-product", cartControllers.GetCart(db))
		cartGroup.POST("/decrease-quantity", cartControllers.DecreaseQuantity(db))
		cartGroup.POST("/remove-from-cart", cartControllers.RemoveFromCart(db))
	}
}

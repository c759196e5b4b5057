package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/suraj-naithani/ecart-api/controllers/order"
	"github.com/suraj-naithani/ecart-api/middleware"
	"github.com/suraj-naithani/ecart-api/models"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers the order endpoints. Single-order lookup is
// public; everything else needs a token, and the seller listing needs the
// Seller role.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		orders.POST("/new", middleware.ValidateToken, orderControllers.CreateOrderHandler(db))
		orders.GET("/my-orders", middleware.ValidateToken, orderControllers.MyOrdersHandler(db))
		orders.GET("/all-orders", middleware.ValidateToken, middleware.RequireRole(models.RoleSeller), orderControllers.SellerOrdersHandler(db))
		orders.GET("/order/:id", orderControllers.GetSingleOrderHandler(db))
		orders.PUT("/order-process/:id", orderControllers.ProcessOrderHandler(db))
		orders.POST("/create-payment-intent", middleware.ValidateToken, orderControllers.CreatePaymentIntentHandler())
		orders.DELETE("/delete/:id", orderControllers.DeleteOrderHandler(db))
	}
}

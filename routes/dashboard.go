package routes

import (
	"github.com/gin-gonic/gin"
	dashboardControllers "github.com/suraj-naithani/ecart-api/controllers/dashboard"
	"github.com/suraj-naithani/ecart-api/middleware"
	"github.com/suraj-naithani/ecart-api/models"
	"gorm.io/gorm"
)

// SetupDashboardRoutes registers the role-gated analytics endpoints.
func SetupDashboardRoutes(r *gin.Engine, db *gorm.DB) {
	dashboardGroup := r.Group("/dashboard")
	dashboardGroup.Use(middleware.ValidateToken)
	{
		dashboardGroup.GET("/seller", middleware.RequireRole(models.RoleSeller), dashboardControllers.SellerDashboard(db))
		dashboardGroup.GET("/admin", middleware.RequireRole(models.RoleAdmin), dashboardControllers.AdminDashboard(db))
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/suraj-naithani/ecart-api/services"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, storage services.ImageStorage) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public catalog + authenticated profile
	SetupProductRoutes(r, db)
	SetupProfileRoutes(r, db)

	// Seller product management (JWT + Seller role)
	SetupSellerRoutes(r, db, storage)

	// Buyer cart (JWT)
	SetupCartRoutes(r, db)

	// Orders + payment intent
	SetupOrderRoutes(r, db)

	// Reviews
	SetupReviewRoutes(r, db)

	// Seller/Admin dashboards
	SetupDashboardRoutes(r, db)
}

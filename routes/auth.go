package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/suraj-naithani/ecart-api/controllers/user"
	"github.com/suraj-naithani/ecart-api/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public /auth endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", userControllers.SignUp(db))
		authGroup.POST("/signin", userControllers.SignIn(db))
	}
}

// SetupProfileRoutes registers the JWT-protected /profile endpoints.
func SetupProfileRoutes(r *gin.Engine, db *gorm.DB) {
	profileGroup := r.Group("/profile")
	profileGroup.Use(middleware.ValidateToken)
	{
		profileGroup.GET("/me", userControllers.GetMyProfile(db))
		profileGroup.PUT("/update-profile", userControllers.UpdateProfile(db))
	}
}

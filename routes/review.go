package routes

import (
	"github.com/gin-gonic/gin"
	reviewControllers "github.com/suraj-naithani/ecart-api/controllers/review"
	"github.com/suraj-naithani/ecart-api/middleware"
	"gorm.io/gorm"
)

// SetupReviewRoutes registers the review endpoints. Reading a product's
// reviews is public; posting and deleting require a token.
func SetupReviewRoutes(r *gin.Engine, db *gorm.DB) {
	reviewGroup := r.Group("/review")
	{
		reviewGroup.POST("/postReview/:productId", middleware.ValidateToken, reviewControllers.PostReview(db))
		reviewGroup.GET("/get-review/:productId", reviewControllers.GetProductReviews(db))
		reviewGroup.GET("/my-product-reviews", middleware.ValidateToken, reviewControllers.GetMyProductReviews(db))
		reviewGroup.DELETE("/deleteReview/:reviewId", middleware.ValidateToken, reviewControllers.DeleteReview(db))
	}
}

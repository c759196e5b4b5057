package reviewControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/suraj-naithani/ecart-api/errs"
	"github.com/suraj-naithani/ecart-api/middleware"
	"github.com/suraj-naithani/ecart-api/models"
	"gorm.io/gorm"
)

type CreateReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// ReviewWithReviewer carries the reviewer's name alongside the review.
type ReviewWithReviewer struct {
	models.Review
	ReviewerName string `json:"reviewer_name"`
}

// StarCount is one bucket of the per-star breakdown.
type StarCount struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

// -------- Core Logic --------

// CreateReview gates on proof of purchase: an order for (user, product) with
// status Delivered must exist. Processing/Shipped orders and no-order cases
// fail identically. The user==product identifier check guards against a
// conflated caller argument.
func CreateReview(db *gorm.DB, userID, productID uint, rating int, comment string) (*models.Review, error) {
	if userID == productID {
		return nil, errs.BadRequest("You cannot review your own product")
	}

	var order models.Order
	err := db.Where("user_id = ? AND product_id = ? AND status = ?",
		userID, productID, models.OrderStatusDelivered).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.Forbidden("You can only review products you have purchased and that are delivered.")
	}
	if err != nil {
		return nil, err
	}

	review := models.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func withReviewerNames(db *gorm.DB, reviews []models.Review) []ReviewWithReviewer {
	result := make([]ReviewWithReviewer, 0, len(reviews))
	for _, review := range reviews {
		entry := ReviewWithReviewer{Review: review}
		var reviewer models.User
		if err := db.Select("name").First(&reviewer, review.UserID).Error; err == nil {
			entry.ReviewerName = reviewer.Name
		}
		result = append(result, entry)
	}
	return result
}

// -------- Handlers --------

// POST /review/postReview/:productId
func PostReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			errs.Respond(c, errs.BadRequest("Invalid product ID"))
			return
		}

		var input CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		review, err := CreateReview(db, middleware.UserID(c), uint(productID), input.Rating, input.Comment)
		if err != nil {
			errs.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "review": review})
	}
}

// GET /review/get-review/:productId
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			errs.Respond(c, errs.BadRequest("Invalid product ID"))
			return
		}

		var reviews []models.Review
		if err := db.Where("product_id = ?", productID).Find(&reviews).Error; err != nil {
			errs.Respond(c, err)
			return
		}

		var mean float64
		starCounts := make(map[int]int64)
		for _, review := range reviews {
			mean += float64(review.Rating)
			starCounts[review.Rating]++
		}
		if len(reviews) > 0 {
			mean /= float64(len(reviews))
		}

		// breakdown ordered by rating descending, only stars in use
		breakdown := make([]StarCount, 0, 5)
		for star := 5; star >= 1; star-- {
			if count, ok := starCounts[star]; ok {
				breakdown = append(breakdown, StarCount{Rating: star, Count: count})
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"success":         true,
			"reviews":         withReviewerNames(db, reviews),
			"totalReviews":    len(reviews),
			"totalRatings":    mean,
			"totalStarsGroup": breakdown,
		})
	}
}

// GET /review/my-product-reviews
func GetMyProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := middleware.UserID(c)

		var products []models.Product
		if err := db.Where("seller_id = ?", sellerID).Find(&products).Error; err != nil {
			errs.Respond(c, err)
			return
		}
		if len(products) == 0 {
			errs.Respond(c, errs.NotFound("No products found for this seller"))
			return
		}

		productIDs := make([]uint, 0, len(products))
		for _, product := range products {
			productIDs = append(productIDs, product.ID)
		}

		var reviews []models.Review
		if err := db.Where("product_id IN ?", productIDs).Find(&reviews).Error; err != nil {
			errs.Respond(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "reviews": withReviewerNames(db, reviews)})
	}
}

// DELETE /review/deleteReview/:reviewId
// Only the seller owning the reviewed product may delete.
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID, err := strconv.Atoi(c.Param("reviewId"))
		if err != nil {
			errs.Respond(c, errs.BadRequest("Invalid review ID"))
			return
		}

		var review models.Review
		if err := db.First(&review, reviewID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				errs.Respond(c, errs.NotFound("Review not found"))
				return
			}
			errs.Respond(c, err)
			return
		}

		var product models.Product
		if err := db.First(&product, review.ProductID).Error; err != nil || product.SellerID != middleware.UserID(c) {
			errs.Respond(c, errs.Forbidden("You are not authorized to delete this review"))
			return
		}

		if err := db.Delete(&review).Error; err != nil {
			errs.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review deleted successfully"})
	}
}

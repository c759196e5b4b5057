package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/suraj-naithani/ecart-api/errs"
	"github.com/suraj-naithani/ecart-api/models"
	"gorm.io/gorm"
)

// GET /product
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			errs.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}

// GET /product/search?product=
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		term := c.Query("product")

		var products []models.Product
		if err := db.Where("name LIKE ?", "%"+term+"%").Find(&products).Error; err != nil {
			errs.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}

// GET /product/:id
// Each detail fetch bumps the product's hit counter; the dashboard uses it as
// the conversion-rate denominator.
func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			errs.Respond(c, errs.BadRequest("Invalid product ID"))
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				errs.Respond(c, errs.NotFound("Product not found"))
				return
			}
			errs.Respond(c, err)
			return
		}

		if err := db.Model(&product).
			UpdateColumn("hit_count", gorm.Expr("hit_count + 1")).Error; err != nil {
			errs.Respond(c, err)
			return
		}
		product.HitCount++

		c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
	}
}

package sellerControllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/suraj-naithani/ecart-api/errs"
	"github.com/suraj-naithani/ecart-api/middleware"
	"github.com/suraj-naithani/ecart-api/models"
	"github.com/suraj-naithani/ecart-api/services"
	"gorm.io/gorm"
)

func uploadImages(c *gin.Context, storage services.ImageStorage, files []*multipart.FileHeader) ([]models.ProductImage, error) {
	var images []models.ProductImage
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		img, err := storage.Upload(c.Request.Context(), f)
		f.Close()
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

func deleteImages(c *gin.Context, storage services.ImageStorage, images []models.ProductImage) error {
	for _, img := range images {
		if err := storage.Delete(c.Request.Context(), img.PublicID); err != nil {
			return err
		}
	}
	return nil
}

// POST /seller/create-product
func CreateProduct(db *gorm.DB, storage services.ImageStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := middleware.UserID(c)

		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		originalPriceStr := c.PostForm("original_price")
		discountStr := c.PostForm("discount_percentage")
		category := c.PostForm("category")
		if name == "" || priceStr == "" || originalPriceStr == "" || discountStr == "" || category == "" {
			errs.Respond(c, errs.BadRequest("name, price, original_price, discount_percentage, and category are required"))
			return
		}
		if !models.IsValidCategory(category) {
			errs.Respond(c, errs.BadRequest("Invalid category"))
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			errs.Respond(c, errs.BadRequest("Invalid price"))
			return
		}
		originalPrice, err := strconv.ParseFloat(originalPriceStr, 64)
		if err != nil || originalPrice < 0 {
			errs.Respond(c, errs.BadRequest("Invalid original_price"))
			return
		}
		discount, err := strconv.ParseFloat(discountStr, 64)
		if err != nil || discount < 0 {
			errs.Respond(c, errs.BadRequest("Invalid discount_percentage"))
			return
		}

		var stock int
		if stockStr := c.PostForm("stock"); stockStr != "" {
			if stock, err = strconv.Atoi(stockStr); err != nil || stock < 0 {
				errs.Respond(c, errs.BadRequest("Invalid stock"))
				return
			}
		}
		var shippingFee float64
		if feeStr := c.PostForm("shipping_fee"); feeStr != "" {
			if shippingFee, err = strconv.ParseFloat(feeStr, 64); err != nil || shippingFee < 0 {
				errs.Respond(c, errs.BadRequest("Invalid shipping_fee"))
				return
			}
		}

		form, err := c.MultipartForm()
		if err != nil || len(form.File["image"]) == 0 {
			errs.Respond(c, errs.BadRequest("Please upload at least one image"))
			return
		}

		images, err := uploadImages(c, storage, form.File["image"])
		if err != nil {
			errs.Respond(c, err)
			return
		}

		product := models.Product{
			SellerID:           sellerID,
			Name:               name,
			Description:        c.PostForm("description"),
			Price:              price,
			OriginalPrice:      originalPrice,
			DiscountPercentage: discount,
			Category:           category,
			Stock:              stock,
			Images:             images,
			ShippingFee:        shippingFee,
		}
		if err := db.Create(&product).Error; err != nil {
			errs.Respond(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Product created successfully",
			"product": product,
		})
	}
}

// GET /seller/products
func GetMyProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("seller_id = ?", middleware.UserID(c)).Find(&products).Error; err != nil {
			errs.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "All products", "allProducts": products})
	}
}

// GET /seller/product/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				errs.Respond(c, errs.NotFound("Product not found"))
				return
			}
			errs.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product details", "product": product})
	}
}

// PUT /seller/update-product/:id
// Replacing images deletes the previous assets from the image host first.
func UpdateProduct(db *gorm.DB, storage services.ImageStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := middleware.UserID(c)

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				errs.Respond(c, errs.NotFound("Product not found"))
				return
			}
			errs.Respond(c, err)
			return
		}
		if product.SellerID != sellerID {
			errs.Respond(c, errs.Forbidden("Unauthorized to update this product"))
			return
		}

		updates := make(map[string]interface{})
		for field, column := range map[string]string{
			"price":               "price",
			"original_price":      "original_price",
			"discount_percentage": "discount_percentage",
			"shipping_fee":        "shipping_fee",
		} {
			if valStr := c.PostForm(field); valStr != "" {
				val, err := strconv.ParseFloat(valStr, 64)
				if err != nil {
					errs.Respond(c, errs.BadRequest("Invalid "+field))
					return
				}
				if val < 0 {
					errs.Respond(c, errs.BadRequest("Price, original price, discount percentage, and shipping fee must not be negative"))
					return
				}
				updates[column] = val
			}
		}
		if name := c.PostForm("name"); name != "" {
			updates["name"] = name
		}
		if description := c.PostForm("description"); description != "" {
			updates["description"] = description
		}
		if category := c.PostForm("category"); category != "" {
			if !models.IsValidCategory(category) {
				errs.Respond(c, errs.BadRequest("Invalid category"))
				return
			}
			updates["category"] = category
		}
		if stockStr := c.PostForm("stock"); stockStr != "" {
			stock, err := strconv.Atoi(stockStr)
			if err != nil || stock < 0 {
				errs.Respond(c, errs.BadRequest("Invalid stock"))
				return
			}
			updates["stock"] = stock
		}

		if form, err := c.MultipartForm(); err == nil && len(form.File["image"]) > 0 {
			if err := deleteImages(c, storage, product.Images); err != nil {
				errs.Respond(c, err)
				return
			}
			images, err := uploadImages(c, storage, form.File["image"])
			if err != nil {
				errs.Respond(c, err)
				return
			}
			updates["images"] = images
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				errs.Respond(c, err)
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product updated successfully",
			"product": product,
		})
	}
}

// DELETE /seller/delete-product/:id
func DeleteProduct(db *gorm.DB, storage services.ImageStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := middleware.UserID(c)

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				errs.Respond(c, errs.NotFound("Product not found"))
				return
			}
			errs.Respond(c, err)
			return
		}
		if product.SellerID != sellerID {
			errs.Respond(c, errs.Forbidden("Unauthorized to delete this product"))
			return
		}

		if err := deleteImages(c, storage, product.Images); err != nil {
			errs.Respond(c, err)
			return
		}
		if err := db.Delete(&product).Error; err != nil {
			errs.Respond(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
	}
}

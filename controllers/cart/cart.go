package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suraj-naithani/ecart-api/errs"
	"github.com/suraj-naithani/ecart-api/middleware"
	"github.com/suraj-naithani/ecart-api/models"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type ProductIDInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// ResolvedCartItem is a cart entry with its product detail joined in.
type ResolvedCartItem struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Product   *models.Product `json:"product"`
}

// -------- Core Logic --------

// AddItem merges qty into an existing item for the product or appends a new
// one. The items array is persisted as one document; duplicates by product id
// never occur.
func AddItem(db *gorm.DB, userID, productID uint, qty int) (*models.Cart, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Product does not exist")
		}
		return nil, err
	}

	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{
			UserID: userID,
			Items:  []models.CartItem{{ProductID: productID, Quantity: qty}},
		}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{ProductID: productID, Quantity: qty})
	}

	if err := db.Model(&cart).Update("items", cart.Items).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// DecreaseItem drops one unit; an item reaching zero is removed entirely.
func DecreaseItem(db *gorm.DB, userID, productID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Cart not found")
		}
		return nil, err
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, errs.NotFound("Product not found in cart")
	}

	if cart.Items[idx].Quantity <= 1 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		cart.Items[idx].Quantity--
	}

	if err := db.Model(&cart).Update("items", cart.Items).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveItem deletes the item regardless of quantity.
func RemoveItem(db *gorm.DB, userID, productID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Cart not found")
		}
		return nil, err
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, errs.NotFound("Product not found in cart")
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)

	if err := db.Model(&cart).Update("items", cart.Items).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// -------- Handlers --------

// POST /cart/add-to-cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		cart, err := AddItem(db, middleware.UserID(c), input.ProductID, input.Quantity)
		if err != nil {
			errs.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
	}
}

// GET /cart/cart-product
// A user without a cart row gets an empty items list, not an error.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var cart models.Cart
		err := db.Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": true, "cart": gin.H{"user_id": userID, "items": []ResolvedCartItem{}}})
			return
		}
		if err != nil {
			errs.Respond(c, err)
			return
		}

		resolved := make([]ResolvedCartItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			entry := ResolvedCartItem{ProductID: item.ProductID, Quantity: item.Quantity}
			var product models.Product
			if err := db.First(&product, item.ProductID).Error; err == nil {
				entry.Product = &product
			}
			resolved = append(resolved, entry)
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "cart": gin.H{
			"id":      cart.ID,
			"user_id": cart.UserID,
			"items":   resolved,
		}})
	}
}

// POST /cart/decrease-quantity
func DecreaseQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductIDInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		cart, err := DecreaseItem(db, middleware.UserID(c), input.ProductID)
		if err != nil {
			errs.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
	}
}

// POST /cart/remove-from-cart
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductIDInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		cart, err := RemoveItem(db, middleware.UserID(c), input.ProductID)
		if err != nil {
			errs.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
	}
}

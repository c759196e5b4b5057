package orderControllers

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

// -------- Request Structs --------

type CreateOrderRequest struct {
	ShippingInfo    *models.ShippingInfo `json:"shipping_info"`
	ShippingCharges float64              `json:"shipping_charges"`
	Discount        float64              `json:"discount"`
	Total           float64              `json:"total"`
	OrderItem       *models.OrderItem    `json:"order_item"`
	ProductID       uint                 `json:"product_id"`
	SellerID        uint                 `json:"seller_id"`
}

// OrderWithProduct is the buyer-side listing projection.
type OrderWithProduct struct {
	models.Order
	Product *models.Product `json:"product"`
}

// OrderWithBuyer is the seller-side listing projection.
type OrderWithBuyer struct {
	models.Order
	User *models.PublicUser `json:"user"`
}

// statusFlow is the forward-only cycle. Delivered is terminal.
var statusFlow = []models.OrderStatus{
	models.OrderStatusProcessing,
	models.OrderStatusShipped,
	models.OrderStatusDelivered,
}

// -------- Core Logic --------

// CreateOrder persists the order with its denormalized snapshot and
// decrements the product's stock in the same transaction. The decrement is
// conditional on sufficient stock; when it matches no row the whole order
// rolls back, so an oversell can never leave a dangling order.
func CreateOrder(db *gorm.DB, buyerID uint, req CreateOrderRequest) (*models.Order, error) {
	if req.ShippingInfo == nil || req.Total == 0 || req.OrderItem == nil {
		return nil, errs.BadRequest("Missing required fields or invalid order items")
	}
	if req.OrderItem.Quantity < 1 {
		return nil, errs.BadRequest("Quantity must be at least 1")
	}

	var product models.Product
	if err := db.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.BadRequest("Product does not exist")
		}
		return nil, err
	}

	if buyerID == product.SellerID {
		return nil, errs.BadRequest("You cannot order your own product")
	}

	order := models.Order{
		UserID:          buyerID,
		SellerID:        req.SellerID,
		ProductID:       req.ProductID,
		ShippingInfo:    *req.ShippingInfo,
		ShippingCharges: req.ShippingCharges,
		Discount:        req.Discount,
		Total:           req.Total,
		OrderItem:       *req.OrderItem,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		result := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", req.ProductID, req.OrderItem.Quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", req.OrderItem.Quantity))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.BadRequest("Insufficient stock for product " + req.OrderItem.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// AdvanceStatus moves the order one step along Processing → Shipped →
// Delivered. Delivered orders reject further calls; a status outside the
// cycle wraps back to Processing.
func AdvanceStatus(db *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Order not found")
		}
		return nil, err
	}

	if order.Status == models.OrderStatusDelivered {
		return nil, errs.BadRequest("Order has already been delivered. No further changes can be made.")
	}

	next := statusFlow[0]
	for i, s := range statusFlow {
		if order.Status == s && i < len(statusFlow)-1 {
			next = statusFlow[i+1]
			break
		}
	}

	order.Status = next
	if err := db.Model(&order).Update("status", next).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// POST /orders/new
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		order, err := CreateOrder(db, middleware.UserID(c), req)
		if err != nil {
			errs.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Order placed successfully",
			"order":   order,
		})
	}
}

// GET /orders/my-orders
// An order history of zero is an empty list, never an error; the same
// contract applies to the seller listing below.
func MyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Where("user_id = ?", middleware.UserID(c)).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			errs.Respond(c, err)
			return
		}

		result := make([]OrderWithProduct, 0, len(orders))
		for _, order := range orders {
			entry := OrderWithProduct{Order: order}
			var product models.Product
			if err := db.First(&product, order.ProductID).Error; err == nil {
				entry.Product = &product
			}
			result = append(result, entry)
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": result})
	}
}

// GET /orders/all-orders (seller)
func SellerOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Where("seller_id = ?", middleware.UserID(c)).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			errs.Respond(c, err)
			return
		}

		result := make([]OrderWithBuyer, 0, len(orders))
		for _, order := range orders {
			entry := OrderWithBuyer{Order: order}
			var buyer models.User
			if err := db.First(&buyer, order.UserID).Error; err == nil {
				public := buyer.Public()
				public.Address = ""
				public.Role = ""
				entry.User = &public
			}
			result = append(result, entry)
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": result})
	}
}

// GET /orders/order/:id
func GetSingleOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			errs.Respond(c, errs.BadRequest("Invalid order ID"))
			return
		}

		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				errs.Respond(c, errs.NotFound("Order not found"))
				return
			}
			errs.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// PUT /orders/order-process/:id
func ProcessOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			errs.Respond(c, errs.BadRequest("Invalid order ID"))
			return
		}

		order, err := AdvanceStatus(db, uint(id))
		if err != nil {
			errs.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order status updated to " + string(order.Status),
			"order":   order,
		})
	}
}

// DELETE /orders/delete/:id
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			errs.Respond(c, errs.BadRequest("Invalid order ID"))
			return
		}

		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				errs.Respond(c, errs.NotFound("Order not found"))
				return
			}
			errs.Respond(c, err)
			return
		}

		if err := db.Delete(&order).Error; err != nil {
			errs.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted"})
	}
}

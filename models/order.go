package models

import "time"

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// ShippingInfo is the address block captured at checkout.
type ShippingInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	PinCode int    `json:"pin_code"`
}

// OrderItem is the product snapshot taken at purchase time. Later product
// edits must not change historical orders, so name/photo/price/quantity are
// denormalized onto the order row.
type OrderItem struct {
	Name     string  `json:"name"`
	Photo    string  `json:"photo"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	ID              uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint         `gorm:"not null;index" json:"user_id"`
	SellerID        uint         `gorm:"not null;index" json:"seller_id"`
	ProductID       uint         `gorm:"not null;index" json:"product_id"`
	ShippingInfo    ShippingInfo `gorm:"serializer:json" json:"shipping_info"`
	ShippingCharges float64      `json:"shipping_charges"`
	Discount        float64      `json:"discount"`
	Total           float64      `gorm:"not null" json:"total"`
	OrderItem       OrderItem    `gorm:"serializer:json" json:"order_item"`
	Status          OrderStatus  `gorm:"type:VARCHAR(20);default:'Processing';not null" json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

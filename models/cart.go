package models

import "time"

// CartItem is one (product, quantity) pair in the cart document.
type CartItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// Cart holds one row per user. Items is a single JSON document replaced
// wholesale on every mutation; merge-by-productID happens in the cart
// controller, never in the database.
type Cart struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Items     []CartItem `gorm:"serializer:json" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

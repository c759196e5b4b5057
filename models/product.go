package models

import "time"

// Categories form a closed set; CreateProduct/UpdateProduct validate against it.
var ProductCategories = []string{"Electronics", "Clothing", "Books", "Home Appliances", "Sports", "Other"}

func IsValidCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ProductImage is an asset reference on the external image host.
type ProductImage struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

type Product struct {
	ID                 uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	SellerID           uint           `gorm:"not null;index" json:"seller_id"`
	Name               string         `gorm:"not null" json:"name"`
	Description        string         `json:"description"`
	Price              float64        `gorm:"not null" json:"price"`
	OriginalPrice      float64        `gorm:"not null" json:"original_price"`
	DiscountPercentage float64        `gorm:"not null" json:"discount_percentage"`
	Category           string         `gorm:"not null" json:"category"`
	Stock              int            `gorm:"not null;default:0" json:"stock"`
	Images             []ProductImage `gorm:"serializer:json" json:"image"`
	ShippingFee        float64        `json:"shipping_fee"`
	HitCount           int            `gorm:"default:0" json:"hit_count"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

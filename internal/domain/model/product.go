package model

import "time"

type Product struct {
	ID          string   `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string   `gorm:"type:varchar(255);not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Price       float64  `gorm:"not null" json:"price"`
	OfferPrice  *float64 `gorm:"column:offer_price" json:"offer_price,omitempty"`

	//カテゴリ（skincare / haircare / bodycare）
	Category string `gorm:"type:varchar(50);not null;index" json:"category"`

	//悩み（acne / dry_skin など）
	Concern string `gorm:"type:varchar(50);index" json:"concern,omitempty"`

	Images      []string  `gorm:"type:jsonb;serializer:json" json:"images"`
	Rating      float64   `gorm:"not null;default:4.5" json:"rating"`
	ReviewCount int       `gorm:"not null;default:0" json:"review_count"`
	Ingredients string    `gorm:"type:text" json:"ingredients,omitempty"`
	HowToUse    string    `gorm:"column:how_to_use;type:text" json:"how_to_use,omitempty"`
	InStock     bool      `gorm:"not null;default:true" json:"in_stock"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

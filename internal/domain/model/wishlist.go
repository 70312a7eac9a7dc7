package model

// 1ユーザーにつきお気に入りは1つ
// product_idsは重複なしの集合として扱う
type Wishlist struct {
	ID         string   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string   `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	ProductIDs []string `gorm:"type:jsonb;serializer:json;not null" json:"product_ids"`
}

package model

import "time"

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
)

type OrderStatus string

const (
	OrderStatusPlaced OrderStatus = "placed"
)

// 注文スナップショットのスキーマ版数
// 明細や住所の形を変えるときはここを上げる
const OrderSnapshotVersion = 1

// 注文確定時点の明細（以後のカタログ変更の影響を受けない）
type OrderLine struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
}

// 注文確定時点の配送先（以後の住所変更の影響を受けない）
type AddressSnapshot struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

// 作成後はorder_status / payment_status以外は不変
type Order struct {
	ID              string          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          string          `gorm:"type:uuid;not null;index" json:"user_id"`
	SnapshotVersion int             `gorm:"not null" json:"snapshot_version"`
	Items           []OrderLine     `gorm:"type:jsonb;serializer:json;not null" json:"items"`
	TotalAmount     float64         `gorm:"not null" json:"total_amount"`
	Address         AddressSnapshot `gorm:"type:jsonb;serializer:json;not null" json:"address"`
	PaymentMethod   string          `gorm:"type:varchar(30);not null" json:"payment_method"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(20);not null" json:"payment_status"`
	OrderStatus     string          `gorm:"type:varchar(30);not null;index" json:"order_status"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
}

package model

import "time"

// カートの明細
// product_idはカート内で一意（同じ商品は数量加算でマージ）
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// 1ユーザーにつきカートは1つ
// 明細はjsonbの配列としてまとめて保存する
type Cart struct {
	ID        string     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string     `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Items     []CartItem `gorm:"type:jsonb;serializer:json;not null" json:"items"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}

// AddItem は同一商品の数量を加算し、無ければ明細を末尾に追加する
func (c *Cart) AddItem(productID string, qty int64) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += qty
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: qty})
}

// SetItemQuantity は数量を上書きする
// qtyが0以下なら明細を削除、商品が無ければ何もしない
func (c *Cart) SetItemQuantity(productID string, qty int64) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			if qty <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity = qty
			}
			return
		}
	}
}

// RemoveItem は明細を削除する（無くてもエラーにしない）
func (c *Cart) RemoveItem(productID string) {
	items := make([]CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	c.Items = items
}

package model_test

import (
	"testing"

	"glowmart/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

// 同じ商品を2回入れても明細は1行で数量が合算される
func TestCart_AddItem_MergesSameProduct(t *testing.T) {
	cart := model.Cart{Items: []model.CartItem{}}

	cart.AddItem("p1", 2)
	cart.AddItem("p1", 3)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
	assert.Equal(t, int64(5), cart.Items[0].Quantity)
}

func TestCart_AddItem_AppendsNewProduct(t *testing.T) {
	cart := model.Cart{Items: []model.CartItem{{ProductID: "p1", Quantity: 1}}}

	cart.AddItem("p2", 4)

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, "p2", cart.Items[1].ProductID)
	assert.Equal(t, int64(4), cart.Items[1].Quantity)
}

func TestCart_SetItemQuantity_Overwrites(t *testing.T) {
	cart := model.Cart{Items: []model.CartItem{{ProductID: "p1", Quantity: 2}}}

	cart.SetItemQuantity("p1", 7)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(7), cart.Items[0].Quantity)
}

// 数量0は明細削除
func TestCart_SetItemQuantity_ZeroRemovesLine(t *testing.T) {
	cart := model.Cart{Items: []model.CartItem{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	}}

	cart.SetItemQuantity("p1", 0)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
}

func TestCart_SetItemQuantity_NegativeRemovesLine(t *testing.T) {
	cart := model.Cart{Items: []model.CartItem{{ProductID: "p1", Quantity: 2}}}

	cart.SetItemQuantity("p1", -1)

	assert.Len(t, cart.Items, 0)
}

// カートに無い商品は黙って何もしない
func TestCart_SetItemQuantity_MissingProductNoop(t *testing.T) {
	cart := model.Cart{Items: []model.CartItem{{ProductID: "p1", Quantity: 2}}}

	cart.SetItemQuantity("ghost", 5)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].Quantity)
}

func TestCart_RemoveItem(t *testing.T) {
	cart := model.Cart{Items: []model.CartItem{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	}}

	cart.RemoveItem("p1")

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
}

func TestCart_RemoveItem_MissingProductNoop(t *testing.T) {
	cart := model.Cart{Items: []model.CartItem{{ProductID: "p1", Quantity: 2}}}

	cart.RemoveItem("ghost")

	assert.Len(t, cart.Items, 1)
}

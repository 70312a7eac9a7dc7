package repository

import (
	"context"

	"glowmart/internal/domain/model"
)

type CartRepository interface {
	//カートが無ければErrNotFound（作成はしない）
	FindByUserID(ctx context.Context, userID string) (model.Cart, error)

	//カートが無ければ作成、同一商品は数量加算
	AddItem(ctx context.Context, userID string, productID string, qty int64) error

	//qtyが0以下なら明細を削除、商品が無ければ何もしない
	//カート自体が無ければErrNotFound
	SetQuantity(ctx context.Context, userID string, productID string, qty int64) error

	//明細が無くてもエラーにしない
	RemoveItem(ctx context.Context, userID string, productID string) error

	//注文確定時にカートを丸ごと消す（無くてもエラーにしない）
	DeleteByUserID(ctx context.Context, userID string) error
}

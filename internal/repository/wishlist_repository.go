package repository

import (
	"context"

	"glowmart/internal/domain/model"
)

type WishlistRepository interface {
	//無ければErrNotFound（作成はしない）
	FindByUserID(ctx context.Context, userID string) (model.Wishlist, error)

	//無ければ作成、登録済みなら何もしない（集合として扱う）
	AddProduct(ctx context.Context, userID string, productID string) error

	//未登録でもエラーにしない
	RemoveProduct(ctx context.Context, userID string, productID string) error
}

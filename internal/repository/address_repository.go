package repository

import (
	"context"

	"glowmart/internal/domain/model"
)

// 住所(Address)を保存・取得する窓口
type AddressRepository interface {
	//Createは住所を新規作成する
	Create(ctx context.Context, address model.Address) (model.Address, error)

	//ユーザーが持つ住所一覧を返す
	ListByUserID(ctx context.Context, userID string) ([]model.Address, error)

	//本人の住所だけ削除する（他人のIDなら何もしない）
	Delete(ctx context.Context, addressID string, userID string) error
}

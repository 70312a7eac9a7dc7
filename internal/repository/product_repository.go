package repository

import (
	"context"
	"errors"

	"glowmart/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索（指定された条件はすべてAND）
type ProductListQuery struct {
	Category string
	Concern  string
	//name または description への部分一致（大文字小文字は無視）
	Search string
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)

	Create(ctx context.Context, p model.Product) error
	//IDを固定したまま全項目を上書きする
	Replace(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id string) error

	//seed用
	Count(ctx context.Context) (int64, error)
	CreateBulk(ctx context.Context, ps []model.Product) error
}

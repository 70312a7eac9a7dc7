package repository

import (
	"context"

	"glowmart/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) error
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)

	//管理者用の注文一覧
	ListAll(ctx context.Context) ([]model.Order, error)

	//order_statusを無条件で上書きする
	UpdateStatus(ctx context.Context, orderID string, status string) error
}

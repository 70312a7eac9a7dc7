package usecase

import (
	"context"
	"net/http"
	"strings"

	"glowmart/internal/domain/model"
	repo "glowmart/internal/repository"
)

type AdminOrderUsecase struct {
	orderRepo repo.OrderRepository
}

// DI
func NewAdminOrderUsecase(orderRepo repo.OrderRepository) *AdminOrderUsecase {
	return &AdminOrderUsecase{orderRepo: orderRepo}
}

// 全ユーザーの注文一覧
func (u *AdminOrderUsecase) ListAll(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return orders, nil
}

// ステータス更新
// 遷移表は持たず任意の文字列をそのまま上書きする
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, orderID string, status string) error {
	if orderID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	if strings.TrimSpace(status) == "" {
		return NewHTTPError(http.StatusBadRequest, "status required")
	}

	if err := u.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

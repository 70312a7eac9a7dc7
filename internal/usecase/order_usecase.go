package usecase

import (
	"context"
	"net/http"
	"time"

	"glowmart/internal/domain/model"
	repo "glowmart/internal/repository"

	"github.com/google/uuid"
)

type OrderUsecase struct {
	orderRepo repo.OrderRepository
	cartRepo  repo.CartRepository
}

// DI
func NewOrderUsecase(orderRepo repo.OrderRepository, cartRepo repo.CartRepository) *OrderUsecase {
	return &OrderUsecase{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
	}
}

type PlaceOrderInput struct {
	Items         []model.OrderLine
	TotalAmount   float64
	Address       model.AddressSnapshot
	PaymentMethod string
}

type PlaceOrderOutput struct {
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}

// PlaceOrder は注文スナップショットを確定する
// 保存後はカートを無条件で削除する（現在のカート内容との突き合わせはしない）
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID string, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if userID == "" {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if len(in.Items) == 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "items required")
	}
	if in.TotalAmount < 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid total_amount")
	}

	//onlineは決済成功扱い、codは支払い待ち
	//どちらでもない値はエラーにせずpendingのまま通す
	paymentStatus := model.PaymentStatusPending
	if in.PaymentMethod == "online" {
		paymentStatus = model.PaymentStatusSuccess
	}

	order := model.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		SnapshotVersion: model.OrderSnapshotVersion,
		Items:           in.Items,
		TotalAmount:     in.TotalAmount,
		Address:         in.Address,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   paymentStatus,
		OrderStatus:     string(model.OrderStatusPlaced),
		CreatedAt:       time.Now(),
	}

	if err := u.orderRepo.Create(ctx, order); err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//カートは必ず消す
	if err := u.cartRepo.DeleteByUserID(ctx, userID); err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return PlaceOrderOutput{
		OrderID: order.ID,
		Message: "Order placed successfully",
	}, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID string) ([]model.Order, error) {
	if userID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return orders, nil
}

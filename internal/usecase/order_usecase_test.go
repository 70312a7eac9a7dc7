package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"glowmart/internal/domain/model"
	"glowmart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID string, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func placeOrderInput(paymentMethod string) usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		Items: []model.OrderLine{
			{ProductID: "p1", ProductName: "Vitamin C Serum", Price: 599, Quantity: 2},
		},
		TotalAmount: 1198,
		Address: model.AddressSnapshot{
			Name:         "Asha",
			Phone:        "9999999999",
			AddressLine1: "12 MG Road",
			City:         "Bengaluru",
			State:        "KA",
			Pincode:      "560001",
		},
		PaymentMethod: paymentMethod,
	}
}

// online決済は即success扱い
func TestOrderUsecase_PlaceOrder_OnlinePaymentSuccess(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	carts := new(CartRepoMock)
	uc := usecase.NewOrderUsecase(orders, carts)

	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.UserID == "u1" &&
			o.PaymentStatus == model.PaymentStatusSuccess &&
			o.OrderStatus == string(model.OrderStatusPlaced) &&
			o.SnapshotVersion == model.OrderSnapshotVersion &&
			len(o.Items) == 1
	})).Return(nil)
	carts.On("DeleteByUserID", mock.Anything, "u1").Return(nil)

	out, err := uc.PlaceOrder(ctx, "u1", placeOrderInput("online"))
	assert.NoError(t, err)
	assert.NotEmpty(t, out.OrderID)
	assert.Equal(t, "Order placed successfully", out.Message)

	orders.AssertExpectations(t)
	carts.AssertExpectations(t)
}

// codは支払い待ちのまま
func TestOrderUsecase_PlaceOrder_CodStaysPending(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	carts := new(CartRepoMock)
	uc := usecase.NewOrderUsecase(orders, carts)

	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.PaymentStatus == model.PaymentStatusPending
	})).Return(nil)
	carts.On("DeleteByUserID", mock.Anything, "u1").Return(nil)

	_, err := uc.PlaceOrder(ctx, "u1", placeOrderInput("cod"))
	assert.NoError(t, err)
}

// 未知の決済方法もエラーにはせずpendingで通す
func TestOrderUsecase_PlaceOrder_UnknownPaymentMethodPending(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	carts := new(CartRepoMock)
	uc := usecase.NewOrderUsecase(orders, carts)

	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.PaymentStatus == model.PaymentStatusPending && o.PaymentMethod == "upi"
	})).Return(nil)
	carts.On("DeleteByUserID", mock.Anything, "u1").Return(nil)

	_, err := uc.PlaceOrder(ctx, "u1", placeOrderInput("upi"))
	assert.NoError(t, err)
}

func TestOrderUsecase_PlaceOrder_ItemsRequired(t *testing.T) {
	orders := new(OrderRepoMock)
	carts := new(CartRepoMock)
	uc := usecase.NewOrderUsecase(orders, carts)

	in := placeOrderInput("cod")
	in.Items = nil

	_, err := uc.PlaceOrder(context.Background(), "u1", in)
	assertHTTPError(t, err, http.StatusBadRequest, "items required")

	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	carts.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
}

// 注文保存に成功したらカートは必ず消える
func TestOrderUsecase_PlaceOrder_CartAlwaysDeleted(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	carts := new(CartRepoMock)
	uc := usecase.NewOrderUsecase(orders, carts)

	orders.On("Create", mock.Anything, mock.Anything).Return(nil)
	carts.On("DeleteByUserID", mock.Anything, "u1").Return(nil)

	_, err := uc.PlaceOrder(ctx, "u1", placeOrderInput("cod"))
	assert.NoError(t, err)

	carts.AssertCalled(t, "DeleteByUserID", mock.Anything, "u1")
}

func TestOrderUsecase_ListMyOrders(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	uc := usecase.NewOrderUsecase(orders, new(CartRepoMock))

	orders.On("ListByUserID", mock.Anything, "u1").Return([]model.Order{
		{ID: "o1", UserID: "u1"},
	}, nil)

	got, err := uc.ListMyOrders(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

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

func TestAdminOrderUsecase_ListAll(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	uc := usecase.NewAdminOrderUsecase(orders)

	orders.On("ListAll", mock.Anything).Return([]model.Order{
		{ID: "o1", UserID: "u1"},
		{ID: "o2", UserID: "u2"},
	}, nil)

	got, err := uc.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAdminOrderUsecase_UpdateStatus_StatusRequired(t *testing.T) {
	orders := new(OrderRepoMock)
	uc := usecase.NewAdminOrderUsecase(orders)

	err := uc.UpdateStatus(context.Background(), "o1", "  ")
	assertHTTPError(t, err, http.StatusBadRequest, "status required")

	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

// 遷移表は持たないので任意の文字列をそのまま通す
func TestAdminOrderUsecase_UpdateStatus_AnyStringAccepted(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoMock)
	uc := usecase.NewAdminOrderUsecase(orders)

	orders.On("UpdateStatus", mock.Anything, "o1", "shipped").Return(nil)

	err := uc.UpdateStatus(ctx, "o1", "shipped")
	assert.NoError(t, err)

	orders.AssertExpectations(t)
}

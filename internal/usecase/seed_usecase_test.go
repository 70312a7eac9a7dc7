package usecase_test

import (
	"context"
	"testing"

	"glowmart/internal/domain/model"
	repo "glowmart/internal/repository"
	"glowmart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type SeedProductRepoMock struct{ mock.Mock }

func (m *SeedProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	panic("not used in SeedUsecase tests")
}

func (m *SeedProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	panic("not used in SeedUsecase tests")
}

func (m *SeedProductRepoMock) Create(ctx context.Context, p model.Product) error {
	panic("not used in SeedUsecase tests")
}

func (m *SeedProductRepoMock) Replace(ctx context.Context, p model.Product) error {
	panic("not used in SeedUsecase tests")
}

func (m *SeedProductRepoMock) Delete(ctx context.Context, id string) error {
	panic("not used in SeedUsecase tests")
}

func (m *SeedProductRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SeedProductRepoMock) CreateBulk(ctx context.Context, ps []model.Product) error {
	args := m.Called(ctx, ps)
	return args.Error(0)
}

func TestSeedUsecase_InitProducts_FirstRun(t *testing.T) {
	ctx := context.Background()

	products := new(SeedProductRepoMock)
	uc := usecase.NewSeedUsecase(products)

	products.On("Count", mock.Anything).Return(int64(0), nil)
	products.On("CreateBulk", mock.Anything, mock.MatchedBy(func(ps []model.Product) bool {
		return len(ps) == 12
	})).Return(nil)

	out, err := uc.InitProducts(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "12 products initialized", out.Message)

	products.AssertExpectations(t)
}

// 2回目以降は投入しない
func TestSeedUsecase_InitProducts_AlreadyInitialized(t *testing.T) {
	ctx := context.Background()

	products := new(SeedProductRepoMock)
	uc := usecase.NewSeedUsecase(products)

	products.On("Count", mock.Anything).Return(int64(12), nil)

	out, err := uc.InitProducts(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "Products already initialized", out.Message)

	products.AssertNotCalled(t, "CreateBulk", mock.Anything, mock.Anything)
}

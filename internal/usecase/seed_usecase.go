package usecase

import (
	"context"
	"fmt"
	"net/http"

	repo "glowmart/internal/repository"
	"glowmart/internal/seed"
)

type SeedUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewSeedUsecase(productRepo repo.ProductRepository) *SeedUsecase {
	return &SeedUsecase{productRepo: productRepo}
}

type InitProductsOutput struct {
	Message string `json:"message"`
}

// InitProducts は固定カタログを一度だけ投入する
// 2回目以降は何もせず初期化済みと返す
func (u *SeedUsecase) InitProducts(ctx context.Context) (InitProductsOutput, error) {
	count, err := u.productRepo.Count(ctx)
	if err != nil {
		return InitProductsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if count > 0 {
		return InitProductsOutput{Message: "Products already initialized"}, nil
	}

	products := seed.SampleProducts()
	if err := u.productRepo.CreateBulk(ctx, products); err != nil {
		return InitProductsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return InitProductsOutput{Message: fmt.Sprintf("%d products initialized", len(products))}, nil
}

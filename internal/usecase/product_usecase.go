package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"glowmart/internal/domain/model"
	repo "glowmart/internal/repository"

	"github.com/google/uuid"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Category string
	Concern  string
	Search   string
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) ([]model.Product, error) {
	products, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Category: strings.TrimSpace(in.Category),
		Concern:  strings.TrimSpace(in.Concern),
		Search:   strings.TrimSpace(in.Search),
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return products, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID string) (model.Product, error) {
	if productID == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return p, nil
}

type AdminProductInput struct {
	Name        string
	Description string
	Price       float64
	OfferPrice  *float64
	Category    string
	Concern     string
	Images      []string
	Rating      float64
	ReviewCount int
	Ingredients string
	HowToUse    string
	InStock     bool
}

func (u *ProductUsecase) AdminCreateProduct(ctx context.Context, in AdminProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}

	p := buildProduct(uuid.NewString(), in)
	p.CreatedAt = time.Now()

	if err := u.productRepo.Create(ctx, p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return p, nil
}

// パスのIDを固定したまま全項目を上書きする
func (u *ProductUsecase) AdminReplaceProduct(ctx context.Context, productID string, in AdminProductInput) (model.Product, error) {
	if productID == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}

	p := buildProduct(productID, in)
	p.CreatedAt = time.Now()

	err := u.productRepo.Replace(ctx, p)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return p, nil
}

func (u *ProductUsecase) AdminDeleteProduct(ctx context.Context, productID string) error {
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.productRepo.Delete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

func buildProduct(id string, in AdminProductInput) model.Product {
	images := in.Images
	if images == nil {
		images = []string{}
	}

	return model.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		OfferPrice:  in.OfferPrice,
		Category:    in.Category,
		Concern:     in.Concern,
		Images:      images,
		Rating:      in.Rating,
		ReviewCount: in.ReviewCount,
		Ingredients: in.Ingredients,
		HowToUse:    in.HowToUse,
		InStock:     in.InStock,
	}
}

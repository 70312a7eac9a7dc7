package handler

import (
	"net/http"

	"glowmart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin/productsのHTTP
type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

// /admin/products のリクエストボディ。
type AdminProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	OfferPrice  *float64 `json:"offer_price"`
	Category    string   `json:"category"`
	Concern     string   `json:"concern"`
	Images      []string `json:"images"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Ingredients string   `json:"ingredients"`
	HowToUse    string   `json:"how_to_use"`
	InStock     bool     `json:"in_stock"`
}

func (r AdminProductRequest) input() usecase.AdminProductInput {
	return usecase.AdminProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		OfferPrice:  r.OfferPrice,
		Category:    r.Category,
		Concern:     r.Concern,
		Images:      r.Images,
		Rating:      r.Rating,
		ReviewCount: r.ReviewCount,
		Ingredients: r.Ingredients,
		HowToUse:    r.HowToUse,
		InStock:     r.InStock,
	}
}

// adminグループ配下に登録（認可ミドルウェアはserver側で設定）
func (h *AdminProductHandler) RegisterRoutes(admin *echo.Group) {
	admin.POST("/products", h.create)
	admin.PUT("/products/:id", h.replace)
	admin.DELETE("/products/:id", h.delete)
}

func (h *AdminProductHandler) create(c echo.Context) error {
	var req AdminProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	product, err := h.uc.AdminCreateProduct(c.Request().Context(), req.input())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *AdminProductHandler) replace(c echo.Context) error {
	var req AdminProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	product, err := h.uc.AdminReplaceProduct(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *AdminProductHandler) delete(c echo.Context) error {
	if err := h.uc.AdminDeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted"})
}

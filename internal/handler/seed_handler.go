package handler

import (
	"net/http"

	"glowmart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /init-productsのHTTP
type SeedHandler struct {
	uc *usecase.SeedUsecase
}

// DI
func NewSeedHandler(uc *usecase.SeedUsecase) *SeedHandler {
	return &SeedHandler{uc: uc}
}

func (h *SeedHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/init-products", h.initProducts)
}

func (h *SeedHandler) initProducts(c echo.Context) error {
	out, err := h.uc.InitProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

package handler

import (
	"net/http"

	"glowmart/internal/middleware"
	"glowmart/internal/token"
	"glowmart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /wishlistのHTTP
type WishlistHandler struct {
	uc *usecase.WishlistUsecase
}

// DI
func NewWishlistHandler(uc *usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

// /wishlist, /wishlist/{product_id} を登録
func (h *WishlistHandler) RegisterRoutes(g *echo.Group, issuer *token.Issuer) {
	wl := g.Group("/wishlist")
	wl.Use(middleware.AuthJWT(issuer))

	wl.GET("", h.getWishlist)
	wl.POST("/:product_id", h.addProduct)
	wl.DELETE("/:product_id", h.removeProduct)
}

func (h *WishlistHandler) getWishlist(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.GetWishlist(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *WishlistHandler) addProduct(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.AddToWishlist(c.Request().Context(), userID, c.Param("product_id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Added to wishlist"})
}

func (h *WishlistHandler) removeProduct(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.RemoveFromWishlist(c.Request().Context(), userID, c.Param("product_id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Removed from wishlist"})
}

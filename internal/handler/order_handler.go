package handler

import (
	"net/http"

	"glowmart/internal/domain/model"
	"glowmart/internal/middleware"
	"glowmart/internal/token"
	"glowmart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /ordersのHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type PlaceOrderRequest struct {
	Items         []model.OrderLine     `json:"items"`
	TotalAmount   float64               `json:"total_amount"`
	Address       model.AddressSnapshot `json:"address"`
	PaymentMethod string                `json:"payment_method"`
}

// /orders を登録
func (h *OrderHandler) RegisterRoutes(g *echo.Group, issuer *token.Issuer) {
	orders := g.Group("/orders")
	orders.Use(middleware.AuthJWT(issuer))

	orders.POST("", h.placeOrder)
	orders.GET("", h.listMyOrders)
}

func (h *OrderHandler) placeOrder(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), userID, usecase.PlaceOrderInput{
		Items:         req.Items,
		TotalAmount:   req.TotalAmount,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) listMyOrders(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListMyOrders(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

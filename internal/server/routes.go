package server

import (
	"glowmart/internal/middleware"
	"glowmart/internal/token"

	"github.com/labstack/echo/v4"
)

// registerRoutes は /api 配下に全ルートを登録する。
func registerRoutes(e *echo.Echo, issuer *token.Issuer, h Handlers) {
	api := e.Group("/api")

	h.Auth.RegisterRoutes(api, issuer)
	h.Product.RegisterRoutes(api)
	h.Cart.RegisterRoutes(api, issuer)
	h.Wishlist.RegisterRoutes(api, issuer)
	h.Address.RegisterRoutes(api, issuer)
	h.Order.RegisterRoutes(api, issuer)
	h.Seed.RegisterRoutes(api)

	// 管理系は認証＋ADMINロール必須
	admin := api.Group("/admin")
	admin.Use(middleware.AuthJWT(issuer))
	admin.Use(middleware.RequireAdmin())
	h.AdminProduct.RegisterRoutes(admin)
	h.AdminOrder.RegisterRoutes(admin)
}

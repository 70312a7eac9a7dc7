package middleware

import (
	"net/http"

	"glowmart/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// RequireAdmin はADMINロールのトークンだけを通す。
// AuthJWTより後ろに積む前提（roleはcontext経由で受け取る）
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxUserRoleKey).(string)

			switch {
			case role == "":
				//未認証（roleが積まれていない）
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			case role != string(model.RoleAdmin):
				return c.JSON(http.StatusForbidden, errorJSON("admin only"))
			}

			return next(c)
		}
	}
}

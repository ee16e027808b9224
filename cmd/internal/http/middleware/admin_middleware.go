package middleware

import (
	"contractregistry/cmd/internal/domain/policy"
	"contractregistry/cmd/internal/utils"

	"github.com/labstack/echo/v4"
)

// NewAdminMiddleware gates the admin console. It runs after the auth
// middleware, which already resolved the session roles into the context.
func NewAdminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles := utils.GetRolesFromContext(c)
			if apierr := policy.RequireAdmin(roles); apierr != nil {
				return c.JSON(apierr.Code(), apierr)
			}
			return next(c)
		}
	}
}

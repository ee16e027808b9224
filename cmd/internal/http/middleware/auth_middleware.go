package middleware

import (
	"net/http"

	"contractregistry/cmd/internal/domain/entity"
	"contractregistry/cmd/internal/utils"
	"contractregistry/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UserRepository interface {
	FindActiveBySub(sub string) (*entity.User, error)
}

type RoleRepository interface {
	FindByUser(userID int64) ([]entity.Role, error)
}

type AuthMiddlewareConfig struct {
	UserRepo UserRepository
	RoleRepo RoleRepository
}

// NewAuthMiddleware validates the bearer token, resolves the local user row
// and its granted roles, and stores both in the request context.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData, err := utils.ParseTokenDataCtx(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			user, err := cfg.UserRepo.FindActiveBySub(tokenData.Sub)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if user == nil {
				// User deleted in DB but still has a valid token???
				return c.JSON(http.StatusUnauthorized, apierror.IDPUserNotFoundError)
			}

			if user.Suspended || !user.Active {
				return c.JSON(http.StatusForbidden, apierror.NewForbiddenError("Missing access"))
			}

			roles, err := cfg.RoleRepo.FindByUser(user.ID)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			c.Set("user", user)
			c.Set("sub", tokenData.Sub)
			c.Set("roles", roles)
			return next(c)
		}
	}
}

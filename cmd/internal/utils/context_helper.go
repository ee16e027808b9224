package utils

import (
	"contractregistry/cmd/internal/domain/entity"
	"contractregistry/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func GetUserFromContext(c echo.Context) (*entity.User, apierror.ErrorResponse) {
	val := c.Get("user")
	if val == nil {
		log.Warnf("route %s attempted to read nil user from context", c.Request().URL)
		return nil, apierror.UnauthorizedError
	}

	user, ok := val.(*entity.User)
	if !ok {
		log.Warnf("expected user type at 'user' context key, got %v", val)
		return nil, apierror.InternalServerError
	}
	return user, nil
}

// GetRolesFromContext returns the roles the auth middleware resolved for the
// current session. An empty slice is a valid result for a role-less user.
func GetRolesFromContext(c echo.Context) []entity.Role {
	val := c.Get("roles")
	if val == nil {
		return nil
	}

	roles, ok := val.([]entity.Role)
	if !ok {
		log.Warnf("expected roles type at 'roles' context key, got %v", val)
		return nil
	}
	return roles
}

package policy

import (
	"contractregistry/cmd/internal/domain/entity"
	"contractregistry/cmd/internal/utils/apierror"
)

// HasRole is a pure predicate over the roles loaded for a session. Role
// checks never reach for global state; callers pass whatever the auth
// middleware resolved.
func HasRole(roles []entity.Role, role entity.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// RequireAdmin gates the admin console surface.
func RequireAdmin(roles []entity.Role) apierror.ErrorResponse {
	if !HasRole(roles, entity.RoleAdmin) {
		return apierror.MissingRoleError
	}
	return nil
}

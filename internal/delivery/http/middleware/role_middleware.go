package middleware

import (
	"net/http"

	"hms-scheduling/internal/domain/entity"
	"hms-scheduling/pkg/response"
)

// RequireRole checks that the authenticated user holds one of the allowed
// roles. The role ID comes from context, set by AuthMiddleware from the JWT
// claims.
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			for _, allowed := range allowedRoleIDs {
				if roleID == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

// RequireReceptionist is a convenience middleware for reception-desk endpoints
func RequireReceptionist(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDReceptionist)(next)
}

// RequireAdminOrReceptionist covers the booking and patient registry
// endpoints, which both roles operate.
func RequireAdminOrReceptionist(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDReceptionist)(next)
}

// RequireStaff admits any authenticated staff member.
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDDoctor, entity.RoleIDReceptionist)(next)
}

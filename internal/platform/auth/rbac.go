package auth

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// FallbackRoute is where denied requests are redirected by the client; it is
// returned in the 403 payload so the front end does not hard-code it.
const FallbackRoute = "/services"

// RoleResolver resolves the role of an authenticated principal with a fresh
// point lookup of the profile store. Implemented by identity.Service.
type RoleResolver interface {
	ResolveRole(ctx context.Context, principalID uuid.UUID) (Role, error)
}

// RequireRole gates a route group on an exact role. The resolver is consulted
// on every request: there is no caching across navigations, no role
// hierarchy, and admin does not satisfy a doctor-only gate. A request whose
// role cannot be resolved (missing session, deleted profile, unknown role
// string) is denied, never defaulted.
func RequireRole(resolver RoleResolver, required Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principalID, ok := PrincipalFromContext(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			role, err := resolver.ResolveRole(c.Request().Context(), principalID)
			if err != nil || role != required {
				return echo.NewHTTPError(http.StatusForbidden, map[string]string{
					"error":    "required role: " + required.String(),
					"redirect": FallbackRoute,
				})
			}

			return next(c)
		}
	}
}

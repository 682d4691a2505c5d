package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const principalIDKey contextKey = "principal_id"

// Middleware authenticates requests with a bearer session token and places
// the principal id on the request context. Requests without a valid token
// are rejected with 401.
func Middleware(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principalID, err := principalFromRequest(c, issuer)
			if err != nil {
				return err
			}
			setPrincipal(c, principalID)
			return next(c)
		}
	}
}

// OptionalMiddleware authenticates a bearer token when one is present but
// lets anonymous requests through. Used by session-aware public routes such
// as the navigation endpoint.
func OptionalMiddleware(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				return next(c)
			}
			principalID, err := principalFromRequest(c, issuer)
			if err != nil {
				return err
			}
			setPrincipal(c, principalID)
			return next(c)
		}
	}
}

func principalFromRequest(c echo.Context, issuer *TokenIssuer) (uuid.UUID, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
	}

	principalID, err := issuer.Verify(parts[1])
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return principalID, nil
}

func setPrincipal(c echo.Context, principalID uuid.UUID) {
	ctx := context.WithValue(c.Request().Context(), principalIDKey, principalID)
	c.SetRequest(c.Request().WithContext(ctx))
}

// PrincipalFromContext returns the authenticated principal id, or false when
// the request carried no valid session.
func PrincipalFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(principalIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithPrincipal returns a context carrying the given principal id. Intended
// for tests that exercise handlers without the HTTP middleware stack.
func WithPrincipal(ctx context.Context, principalID uuid.UUID) context.Context {
	return context.WithValue(ctx, principalIDKey, principalID)
}

package nav

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pranay7979/BrainyCheck/internal/platform/auth"
)

type Handler struct {
	resolver auth.RoleResolver
}

func NewHandler(resolver auth.RoleResolver) *Handler {
	return &Handler{resolver: resolver}
}

// RegisterRoutes mounts the menu endpoint. The group must carry the optional
// bearer middleware so anonymous requests still get the guest menu.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/navigation", h.Get)
}

func (h *Handler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	principal, authenticated := auth.PrincipalFromContext(ctx)

	var role auth.Role
	if authenticated {
		if r, err := h.resolver.ResolveRole(ctx, principal); err == nil {
			role = r
		}
	}
	currentPath := c.QueryParam("current")
	return c.JSON(http.StatusOK, Entries(authenticated, role, currentPath))
}

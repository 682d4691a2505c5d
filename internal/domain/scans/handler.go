package scans

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pranay7979/BrainyCheck/internal/platform/auth"
	"github.com/pranay7979/BrainyCheck/internal/platform/metrics"
	"github.com/pranay7979/BrainyCheck/internal/platform/predict"
)

type Handler struct {
	svc      *Service
	resolver auth.RoleResolver
}

func NewHandler(svc *Service, resolver auth.RoleResolver) *Handler {
	return &Handler{svc: svc, resolver: resolver}
}

// RegisterRoutes mounts the prediction endpoints on api, which must carry the
// bearer-token middleware. Both routes accept any authenticated role; the
// listing result is scoped by the resolved role.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/predict", h.Predict)
	api.GET("/scans", h.List)
}

func (h *Handler) Predict(c echo.Context) error {
	principal, ok := auth.PrincipalFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image is required")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable image")
	}
	defer src.Close()

	age, _ := strconv.Atoi(c.FormValue("age"))
	in := PredictInput{
		Image:       src,
		Filename:    file.Filename,
		PatientName: c.FormValue("patientName"),
		Age:         age,
		DiseaseType: c.FormValue("diseaseType"),
	}

	event, err := h.svc.Predict(c.Request().Context(), principal, in)
	if errors.Is(err, predict.ErrServiceFailure) {
		metrics.PredictionsTotal.WithLabelValues("failure").Inc()
		return echo.NewHTTPError(http.StatusBadGateway, "prediction service unavailable")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	metrics.PredictionsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, event)
}

func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()
	principal, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	role, err := h.resolver.ResolveRole(ctx, principal)
	if err != nil {
		return echo.NewHTTPError(http.StatusForbidden, "unknown account")
	}
	events, err := h.svc.ListFor(ctx, principal, role)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if events == nil {
		events = []*ScanEvent{}
	}
	return c.JSON(http.StatusOK, events)
}

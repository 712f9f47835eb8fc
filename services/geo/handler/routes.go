package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/quickfix-app/quickfix/internal/pkg/middleware"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/quickfix-app/quickfix/services/geo"
	httpHandler "github.com/quickfix-app/quickfix/services/geo/handler/http"
)

// HTTPHandler combines all handlers for the geo service
type HTTPHandler struct {
	technicianHTTP *httpHandler.TechnicianHandler
	cfg            *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(cfg *models.Config, geoUC geo.GeoUC) *HTTPHandler {
	return &HTTPHandler{
		technicianHTTP: httpHandler.NewTechnicianHandler(cfg, geoUC),
		cfg:            cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	technicians := e.Group("/technicians", middleware.JWTAuthMiddleware(h.cfg.JWT))

	technicians.PUT("/me/location", h.technicianHTTP.UpdateLocation)
	technicians.PUT("/me/availability", h.technicianHTTP.UpdateAvailability)
	technicians.PUT("/me/skills", h.technicianHTTP.UpdateSkills)
	technicians.GET("/nearby", h.technicianHTTP.FindNearby)
}

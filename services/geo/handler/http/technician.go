package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/quickfix-app/quickfix/internal/pkg/logger"
	"github.com/quickfix-app/quickfix/internal/pkg/middleware"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/quickfix-app/quickfix/internal/utils"
	"github.com/quickfix-app/quickfix/services/geo"
	"github.com/quickfix-app/quickfix/services/skills"
)

// TechnicianHandler handles HTTP requests for technician dispatch state
type TechnicianHandler struct {
	cfg   *models.Config
	geoUC geo.GeoUC
}

// NewTechnicianHandler creates a new technician HTTP handler
func NewTechnicianHandler(cfg *models.Config, geoUC geo.GeoUC) *TechnicianHandler {
	return &TechnicianHandler{
		cfg:   cfg,
		geoUC: geoUC,
	}
}

// UpdateLocation stores the authenticated technician's current position
func (h *TechnicianHandler) UpdateLocation(c echo.Context) error {
	actor := middleware.ActorFromContext(c)
	if actor.Role != models.RoleTechnician {
		return utils.ForbiddenResponse(c, "only technicians can update their location")
	}

	var req models.Location
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind location request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.geoUC.UpdateLocation(c.Request().Context(), actor.ID, req); err != nil {
		if errors.Is(err, geo.ErrInvalidLocation) {
			return utils.BadRequestResponse(c, "invalid location coordinates")
		}
		logger.Error("Failed to update technician location",
			logger.String("technician_id", actor.ID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to update location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", map[string]string{"status": "success"})
}

// UpdateAvailability flips the authenticated technician's availability and
// optionally their service radius
func (h *TechnicianHandler) UpdateAvailability(c echo.Context) error {
	actor := middleware.ActorFromContext(c)
	if actor.Role != models.RoleTechnician {
		return utils.ForbiddenResponse(c, "only technicians can update their availability")
	}

	var req struct {
		Available       bool    `json:"available"`
		ServiceRadiusKm float64 `json:"service_radius_km"`
	}
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind availability request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.geoUC.SetAvailability(c.Request().Context(), actor.ID, req.Available, req.ServiceRadiusKm); err != nil {
		if errors.Is(err, geo.ErrInvalidRadius) {
			return utils.BadRequestResponse(c, "service radius must be positive")
		}
		logger.Error("Failed to update technician availability",
			logger.String("technician_id", actor.ID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to update availability")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", map[string]bool{"available": req.Available})
}

// UpdateSkills replaces the authenticated technician's skill set
func (h *TechnicianHandler) UpdateSkills(c echo.Context) error {
	actor := middleware.ActorFromContext(c)
	if actor.Role != models.RoleTechnician {
		return utils.ForbiddenResponse(c, "only technicians can update their skills")
	}

	var req struct {
		Skills []string `json:"skills"`
	}
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind skills request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.geoUC.UpdateSkills(c.Request().Context(), actor.ID, req.Skills); err != nil {
		if errors.Is(err, geo.ErrInvalidSkills) {
			return utils.BadRequestResponse(c, "invalid skills selected")
		}
		logger.Error("Failed to update technician skills",
			logger.String("technician_id", actor.ID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to update skills")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Skills updated", map[string][]string{"skills": req.Skills})
}

// FindNearby finds available technicians with a skill near a location
func (h *TechnicianHandler) FindNearby(c echo.Context) error {
	latStr := c.QueryParam("lat")
	lngStr := c.QueryParam("lng")
	skill := c.QueryParam("skill")

	if latStr == "" || lngStr == "" || skill == "" {
		return utils.BadRequestResponse(c, "lat, lng, and skill are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid latitude")
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid longitude")
	}

	radiusKm := h.cfg.Match.SearchRadiusKm
	if radiusStr := c.QueryParam("radius"); radiusStr != "" {
		radiusKm, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil || radiusKm <= 0 {
			return utils.BadRequestResponse(c, "invalid radius")
		}
	}

	origin := models.Location{Latitude: lat, Longitude: lng}
	candidates, err := h.geoUC.FindCandidates(c.Request().Context(), origin, skills.Normalize(skill), radiusKm, h.cfg.Match.CandidateLimit)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidLocation) {
			return utils.BadRequestResponse(c, "invalid location coordinates")
		}
		logger.Error("Failed to find nearby technicians", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to find technicians")
	}

	// Display surface only: ranking upstream uses the exact distances.
	for i := range candidates {
		candidates[i].DistanceKm = math.Round(candidates[i].DistanceKm*100) / 100
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby technicians found", candidates)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/commutemap/internal/pkg/logger"
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/internal/utils"
	"github.com/piresc/commutemap/services/session"
)

// SessionHandler handles HTTP requests for the commute map session
type SessionHandler struct {
	sessionUC session.SessionUC
}

// NewSessionHandler creates a new session HTTP handler
func NewSessionHandler(sessionUC session.SessionUC) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
	}
}

// GetState returns the current inputs and delivered analyses
func (h *SessionHandler) GetState(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Session state retrieved successfully", h.sessionUC.State())
}

// bindPlace returns the posted point or a message describing what is wrong with it
func bindPlace(c echo.Context) (models.LocationPoint, string) {
	var req models.PlaceRequest
	if err := c.Bind(&req); err != nil {
		return models.LocationPoint{}, "Invalid request body: " + err.Error()
	}
	point, ok := req.Point()
	if !ok {
		return models.LocationPoint{}, "lat and lng are required"
	}
	return point, ""
}

// SetHome handles setting the home point
func (h *SessionHandler) SetHome(c echo.Context) error {
	point, problem := bindPlace(c)
	if problem != "" {
		return utils.BadRequestResponse(c, problem)
	}

	if err := h.sessionUC.SetHome(c.Request().Context(), &point); err != nil {
		logger.Warn("Failed to set home", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Home updated successfully", h.sessionUC.State())
}

// ClearHome removes the home point
func (h *SessionHandler) ClearHome(c echo.Context) error {
	if err := h.sessionUC.SetHome(c.Request().Context(), nil); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Home cleared successfully", h.sessionUC.State())
}

// SetWork handles setting the work point
func (h *SessionHandler) SetWork(c echo.Context) error {
	point, problem := bindPlace(c)
	if problem != "" {
		return utils.BadRequestResponse(c, problem)
	}

	if err := h.sessionUC.SetWork(c.Request().Context(), &point); err != nil {
		logger.Warn("Failed to set work", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Work updated successfully", h.sessionUC.State())
}

// ClearWork removes the work point
func (h *SessionHandler) ClearWork(c echo.Context) error {
	if err := h.sessionUC.SetWork(c.Request().Context(), nil); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Work cleared successfully", h.sessionUC.State())
}

// AddFrequent appends a frequent point
func (h *SessionHandler) AddFrequent(c echo.Context) error {
	point, problem := bindPlace(c)
	if problem != "" {
		return utils.BadRequestResponse(c, problem)
	}

	fp, err := h.sessionUC.AddFrequent(c.Request().Context(), point)
	if err != nil {
		logger.Warn("Failed to add frequent point",
			logger.String("label", point.Label),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Frequent point added successfully", fp)
}

// RemoveFrequent removes a frequent point
func (h *SessionHandler) RemoveFrequent(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Point ID is required")
	}

	if err := h.sessionUC.RemoveFrequent(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Frequent point removed successfully", nil)
}

// ReorderFrequent reorders the frequent points
func (h *SessionHandler) ReorderFrequent(c echo.Context) error {
	var req models.ReorderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.sessionUC.ReorderFrequent(c.Request().Context(), req.IDs); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Frequent points reordered successfully", h.sessionUC.State().Frequent)
}

// SetMode selects the transport mode
func (h *SessionHandler) SetMode(c echo.Context) error {
	var req models.ModeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	mode, err := models.ParseTransportMode(req.Mode)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if err := h.sessionUC.SetMode(c.Request().Context(), mode); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Mode updated successfully", h.sessionUC.State())
}

// SetToggles replaces the overlay configuration
func (h *SessionHandler) SetToggles(c echo.Context) error {
	toggles := h.sessionUC.State().Toggles
	if err := c.Bind(&toggles); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.sessionUC.SetToggles(c.Request().Context(), toggles); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Overlays updated successfully", h.sessionUC.State())
}

// GetMap returns the drawn map
func (h *SessionHandler) GetMap(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Map retrieved successfully", h.sessionUC.Map())
}

// CenterOn moves the map to a reference point
func (h *SessionHandler) CenterOn(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Target ID is required")
	}

	if err := h.sessionUC.CenterOn(id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Map centered successfully", h.sessionUC.Map().View)
}

// GetComparison returns the ranked comparison and its projection
func (h *SessionHandler) GetComparison(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Comparison retrieved successfully", h.sessionUC.Comparison())
}

// GetPreferences returns the preference snapshot
func (h *SessionHandler) GetPreferences(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Preferences retrieved successfully", h.sessionUC.Snapshot())
}

// PutPreferences replaces every input with the posted snapshot
func (h *SessionHandler) PutPreferences(c echo.Context) error {
	var snapshot models.PreferenceSnapshot
	if err := c.Bind(&snapshot); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.sessionUC.Restore(c.Request().Context(), snapshot); err != nil {
		logger.Warn("Failed to restore preferences", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Preferences restored successfully", h.sessionUC.State())
}

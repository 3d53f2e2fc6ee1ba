package handlers

import (
	"net/http"

	"deals-backend/models"
	"deals-backend/services"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locationService *services.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService *services.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// GetState returns the session's location acquisition state.
// GET /api/v1/location
func (h *LocationHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.locationService.State())
}

// Activate runs the location acquisition strategy. The body relays the
// client's device geolocation outcome; with no body at all the strategy
// goes straight to the IP fallback.
// POST /api/v1/location/activate  body: {"lat": .., "lng": .., "denied": false}
func (h *LocationHandler) Activate(c *gin.Context) {
	var req models.ActivateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
	}

	position := services.ClientPosition{
		Lat:    req.Latitude,
		Lng:    req.Longitude,
		Denied: req.Denied,
	}
	state := h.locationService.Activate(c.Request.Context(), position)
	c.JSON(http.StatusOK, state)
}

// Deactivate turns near-me off for the session.
// POST /api/v1/location/deactivate
func (h *LocationHandler) Deactivate(c *gin.Context) {
	c.JSON(http.StatusOK, h.locationService.Deactivate())
}

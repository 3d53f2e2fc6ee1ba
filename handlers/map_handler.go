package handlers

import (
	"net/http"

	"deals-backend/config"
	"deals-backend/models"
	"deals-backend/services"

	"github.com/gin-gonic/gin"
)

type MapHandler struct {
	feedService     *services.FeedService
	locationService *services.LocationService
	cfg             *config.Config
}

// NewMapHandler creates a new map handler
func NewMapHandler(feedService *services.FeedService, locationService *services.LocationService, cfg *config.Config) *MapHandler {
	return &MapHandler{
		feedService:     feedService,
		locationService: locationService,
		cfg:             cfg,
	}
}

// GetPins returns clustered map pins for the current filters and zoom.
// GET /api/v1/map/pins?zoom=10.5&category=food&near_me=true&lat=..&lng=..&radius=5
func (h *MapHandler) GetPins(c *gin.Context) {
	var req models.PinsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, "Zoom level is required")
		return
	}

	coord := coordinateFromRequest(req.Latitude, req.Longitude, h.locationService.Coordinate())
	radius := req.RadiusKm
	if req.NearMe && radius <= 0 {
		radius = h.cfg.DefaultRadiusKm
	}

	// The map never shows expired or unlocated deals; the pipeline drops
	// the former, BuildPins the latter.
	filter := models.FilterState{
		Category:     req.Category,
		SearchText:   req.Query,
		RadiusKm:     radius,
		NearMeActive: req.NearMe,
		VerifiedOnly: req.VerifiedOnly,
	}

	result, err := h.feedService.FetchFeed(filter, coord, h.cfg.MaxDealsReturn)
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}

	pins := services.BuildPinsWithCutoff(result.Deals, req.Zoom, h.cfg.ClusterZoomCutoff)
	clusters := 0
	for _, pin := range pins {
		if pin.IsCluster {
			clusters++
		}
	}

	c.JSON(http.StatusOK, models.PinsResponse{
		Pins:     pins,
		Zoom:     req.Zoom,
		Count:    len(pins),
		Clusters: clusters,
	})
}

// GetViewport returns the default map viewport.
// GET /api/v1/map/viewport
func (h *MapHandler) GetViewport(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"latitude":       h.cfg.DefaultLatitude,
		"longitude":      h.cfg.DefaultLongitude,
		"zoom":           h.cfg.DefaultZoom,
		"radius_options": h.cfg.RadiusOptions(),
	})
}

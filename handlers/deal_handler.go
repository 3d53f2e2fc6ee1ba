package handlers

import (
	"fmt"
	"net/http"
	"time"

	"deals-backend/config"
	"deals-backend/models"
	"deals-backend/services"
	"deals-backend/utils"

	"github.com/gin-gonic/gin"
)

type DealHandler struct {
	feedService     *services.FeedService
	eventService    *services.EventService
	llmService      *services.LLMService
	locationService *services.LocationService
	cfg             *config.Config
}

// NewDealHandler creates a new deal handler
func NewDealHandler(
	feedService *services.FeedService,
	eventService *services.EventService,
	llmService *services.LLMService,
	locationService *services.LocationService,
	cfg *config.Config,
) *DealHandler {
	return &DealHandler{
		feedService:     feedService,
		eventService:    eventService,
		llmService:      llmService,
		locationService: locationService,
		cfg:             cfg,
	}
}

// GetFeed returns the filtered, ranked deal list.
// GET /api/v1/deals/feed?mode=trending&category=food&query=pizza&near_me=true&lat=..&lng=..&radius=5
func (h *DealHandler) GetFeed(c *gin.Context) {
	var req models.FeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if !models.ValidFeedMode(req.Mode) {
		respondBadRequest(c, fmt.Sprintf("unknown feed mode %q", req.Mode))
		return
	}

	filter, coord := h.buildFilterState(&req)
	result, err := h.feedService.FetchFeed(filter, coord, req.Limit)
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, models.FeedResponse{
		Deals: dealsToResponses(result.Deals),
		Metadata: models.NewResponseMetadata(
			len(result.Deals),
			result.TotalAvailable,
			req.Query,
			feedFilters(&req),
		),
	})
}

// GetSpotlight returns the top-picks selection.
// GET /api/v1/deals/spotlight?lat=..&lng=..&limit=6
func (h *DealHandler) GetSpotlight(c *gin.Context) {
	var req models.FeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	coord := coordinateFromRequest(req.Latitude, req.Longitude, h.locationService.Coordinate())
	deals, err := h.feedService.GetSpotlight(coord, req.Limit)
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, models.FeedResponse{
		Deals:    dealsToResponses(deals),
		Metadata: models.NewResponseMetadata(len(deals), len(deals), "", map[string]string{"view": "spotlight"}),
	})
}

// GetDealByID returns a single deal with presentation extras.
// GET /api/v1/deals/:id
func (h *DealHandler) GetDealByID(c *gin.Context) {
	id := c.Param("id")

	deal, err := h.feedService.GetDealByID(id)
	if err != nil {
		respondNotFound(c, err.Error())
		return
	}

	resp := dealToResponse(deal, time.Now())
	resp.Highlight = h.llmService.GenerateHighlight(deal.ID, deal.Title, deal.Description)

	c.JSON(http.StatusOK, gin.H{
		"deal": resp,
		"health": utils.DealHealth(
			deal.Image != "",
			deal.HasLocation(),
			deal.Description,
			deal.ValidTillDate != nil,
			deal.OfferPrice != "" || deal.OriginalPrice != "",
		),
	})
}

// RecordEvent records a view or click on a deal. Best-effort from the
// client's perspective: a missing deal is the only reported failure.
// POST /api/v1/events
func (h *DealHandler) RecordEvent(c *gin.Context) {
	var req models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.eventService.RecordDealEvent(req.DealID, req.EventType, req.Latitude, req.Longitude, req.PagePath); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"recorded": true})
}

// GetCategories lists the canonical category filters.
// GET /api/v1/categories
func (h *DealHandler) GetCategories(c *gin.Context) {
	options := append([]models.CategoryOption{{Value: models.CategoryAll, Label: "All"}}, models.CategoryOptions...)
	c.JSON(http.StatusOK, gin.H{"categories": options})
}

// GetStats returns statistics about the deal and event tables.
// GET /api/v1/deals/stats
func (h *DealHandler) GetStats(c *gin.Context) {
	dealStats, err := h.feedService.GetDealStats()
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}
	eventStats, err := h.eventService.GetEventStats()
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deals": dealStats, "events": eventStats})
}

// HealthCheck is a simple health check endpoint
// GET /api/v1/health
func (h *DealHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "deals-backend",
		"version": "1.0.0",
	})
}

// buildFilterState translates a feed request into the engine's filter
// state plus the coordinate to use, applying the configured radius
// default when near-me is on without an explicit radius.
func (h *DealHandler) buildFilterState(req *models.FeedRequest) (models.FilterState, *models.UserCoordinate) {
	coord := coordinateFromRequest(req.Latitude, req.Longitude, h.locationService.Coordinate())

	radius := req.RadiusKm
	if req.NearMe && radius <= 0 {
		radius = h.cfg.DefaultRadiusKm
	}

	return models.FilterState{
		Category:     req.Category,
		SearchText:   req.Query,
		RadiusKm:     radius,
		NearMeActive: req.NearMe,
		VerifiedOnly: req.VerifiedOnly,
		FeedMode:     req.Mode,
		ShowExpired:  req.ShowExpired,
	}, coord
}

func feedFilters(req *models.FeedRequest) map[string]string {
	filters := map[string]string{}
	if req.Category != "" {
		filters["category"] = req.Category
	}
	if req.Mode != "" {
		filters["mode"] = string(req.Mode)
	}
	if req.NearMe {
		filters["near_me"] = "true"
		filters["radius"] = fmt.Sprintf("%.1f", req.RadiusKm)
	}
	if req.VerifiedOnly {
		filters["verified_only"] = "true"
	}
	return filters
}

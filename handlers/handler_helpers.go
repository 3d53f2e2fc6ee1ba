package handlers

import (
	"net/http"
	"time"

	"deals-backend/models"
	"deals-backend/utils"

	"github.com/gin-gonic/gin"
)

// =============================================================================
// Response Helpers
// =============================================================================

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, code int, error, message string) {
	c.JSON(code, models.ErrorResponse{
		Error:   error,
		Message: message,
		Code:    code,
	})
}

// respondBadRequest sends a 400 error response
func respondBadRequest(c *gin.Context, message string) {
	respondWithError(c, http.StatusBadRequest, "Invalid request", message)
}

// respondInternalError sends a 500 error response
func respondInternalError(c *gin.Context, message string) {
	respondWithError(c, http.StatusInternalServerError, "Internal error", message)
}

// respondNotFound sends a 404 error response
func respondNotFound(c *gin.Context, message string) {
	respondWithError(c, http.StatusNotFound, "Not found", message)
}

// =============================================================================
// Deal Conversion Helpers
// =============================================================================

// dealToResponse converts a Deal to its API shape, filling the computed
// presentation fields (category label, offer line, urgency).
func dealToResponse(deal *models.Deal, now time.Time) models.DealResponse {
	return models.DealResponse{
		ID:            deal.ID,
		Title:         deal.Title,
		Description:   deal.Description,
		City:          deal.City,
		Area:          deal.Area,
		Category:      models.NormalizeCategory(deal.Category),
		CategoryLabel: models.CategoryLabel(deal.Category),
		Image:         deal.Image,
		OfferLine:     utils.OfferLine(deal.OfferPrice, deal.OriginalPrice, deal.DiscountLabel),
		UrgencyLabel:  utils.UrgencyLabel(deal.ValidTillDate, now),
		Latitude:      deal.Latitude,
		Longitude:     deal.Longitude,
		ValidTillDate: deal.ValidTillDate,
		Rating:        deal.Rating,
		RatingCount:   deal.RatingCount,
		Views:         deal.Views,
		Clicks:        deal.Clicks,
		IsVerified:    deal.IsVerified,
		Distance:      deal.Distance,
	}
}

// dealsToResponses converts a slice of Deals to DealResponses
func dealsToResponses(deals []models.Deal) []models.DealResponse {
	now := time.Now()
	responses := make([]models.DealResponse, len(deals))
	for i := range deals {
		responses[i] = dealToResponse(&deals[i], now)
	}
	return responses
}

// coordinateFromRequest resolves the user coordinate for a request:
// client-supplied lat/lng take precedence (exact precision); otherwise
// the session's resolved coordinate, if any, is used. lat == 0 &&
// lng == 0 is the "not supplied" sentinel, so a client cannot express
// Null Island itself; no serviceable deal exists there.
func coordinateFromRequest(lat, lng float64, session *models.UserCoordinate) *models.UserCoordinate {
	if lat != 0 || lng != 0 {
		if utils.ValidateLocation(lat, lng) == nil {
			return &models.UserCoordinate{Lat: lat, Lng: lng, Precision: models.PrecisionExact}
		}
	}
	return session
}

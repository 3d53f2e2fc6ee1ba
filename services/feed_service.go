package services

import (
	"fmt"
	"strings"
	"time"

	"deals-backend/config"
	"deals-backend/database"
	"deals-backend/models"
	"deals-backend/utils"

	"gorm.io/gorm"
)

type FeedService struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewFeedService creates a new feed service instance
func NewFeedService(cfg *config.Config) *FeedService {
	return &FeedService{
		db:  database.GetDB(),
		cfg: cfg,
	}
}

// FeedResult contains deals and metadata about the fetch operation
type FeedResult struct {
	Deals          []models.Deal
	TotalAvailable int // Total matching deals before limiting
}

// FilterAndRank runs the full filter pipeline over the given deals and
// returns a new ordered slice. The input slice and its elements are not
// mutated. Stages, in order: status/expiry, category, text search,
// verified-only, proximity (filter + distance sort), feed-mode ordering.
// The proximity sort takes precedence over the feed mode whenever
// near-me is active and a coordinate was resolved; otherwise the feed
// mode reorders the list. A non-positive RadiusKm leaves the distance
// bound open: near-me then only drops unlocated deals and orders the
// rest by distance. All sorts are stable.
func FilterAndRank(deals []models.Deal, filter models.FilterState, coord *models.UserCoordinate) []models.Deal {
	return filterAndRankAt(deals, filter, coord, time.Now())
}

func filterAndRankAt(deals []models.Deal, filter models.FilterState, coord *models.UserCoordinate, now time.Time) []models.Deal {
	out := make([]models.Deal, 0, len(deals))

	for _, deal := range deals {
		// Stage 1: status and expiry
		if !deal.IsActive() {
			continue
		}
		if !filter.ShowExpired && deal.IsExpired(now) {
			continue
		}

		// Stage 2: category
		if !models.CategoryMatchesFilter(deal.Category, filter.Category) {
			continue
		}

		// Stage 3: case-insensitive substring search
		if !matchesSearch(&deal, filter.SearchText) {
			continue
		}

		// Verified-only predicate
		if filter.VerifiedOnly && !deal.IsVerified {
			continue
		}

		out = append(out, deal)
	}

	// Stage 4: proximity. Active only when near-me is on and a
	// coordinate was actually resolved; the pipeline works identically
	// without one, it just never narrows by distance.
	if filter.NearMeActive && coord != nil {
		located := make([]models.Deal, 0, len(out))
		for _, deal := range out {
			if deal.HasLocation() {
				located = append(located, deal)
			}
		}
		if filter.RadiusKm > 0 {
			located = utils.FilterByDistance[models.Deal](located, coord.Lat, coord.Lng, filter.RadiusKm)
		}
		utils.SortByDistanceFrom[models.Deal](located, coord.Lat, coord.Lng)
		return located
	}

	// Stage 5: feed-mode ordering
	applyFeedMode(out, filter.FeedMode)
	return out
}

// matchesSearch checks the lowercase search text against the deal's
// title, description, city, area, category and category label.
func matchesSearch(deal *models.Deal, searchText string) bool {
	search := strings.ToLower(strings.TrimSpace(searchText))
	if search == "" {
		return true
	}
	haystacks := []string{
		deal.Title,
		deal.Description,
		deal.City,
		deal.Area,
		deal.Category,
		models.CategoryLabel(deal.Category),
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), search) {
			return true
		}
	}
	return false
}

// applyFeedMode reorders deals in place per the named feed mode.
// for-you keeps the prior (recency) order.
func applyFeedMode(deals []models.Deal, mode models.FeedMode) {
	switch mode {
	case models.FeedTopRated:
		utils.StableSortBy(deals, func(a, b models.Deal) bool {
			if a.RatingOrZero() != b.RatingOrZero() {
				return a.RatingOrZero() > b.RatingOrZero()
			}
			return a.RatingCount > b.RatingCount
		})
	case models.FeedEndingSoon:
		// Deals with no expiry sort last
		utils.StableSortBy(deals, func(a, b models.Deal) bool {
			if a.ValidTillDate == nil {
				return false
			}
			if b.ValidTillDate == nil {
				return true
			}
			return a.ValidTillDate.Before(*b.ValidTillDate)
		})
	case models.FeedTrending:
		utils.StableSortBy(deals, func(a, b models.Deal) bool {
			return a.Engagement() > b.Engagement()
		})
	}
}

// FetchFeed loads the deal set from the repository in recency order and
// runs the filter pipeline over it.
func (s *FeedService) FetchFeed(filter models.FilterState, coord *models.UserCoordinate, limit int) (*FeedResult, error) {
	var deals []models.Deal
	if err := s.db.Order("created_at DESC").Find(&deals).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch deals: %w", err)
	}

	ranked := FilterAndRank(deals, filter, coord)

	if limit <= 0 || limit > s.cfg.MaxDealsReturn {
		limit = s.cfg.MaxDealsReturn
	}
	total := len(ranked)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return &FeedResult{Deals: ranked, TotalAvailable: total}, nil
}

// GetDealByID retrieves a single deal by ID
func (s *FeedService) GetDealByID(id string) (*models.Deal, error) {
	var deal models.Deal
	if err := s.db.Where("id = ?", id).First(&deal).Error; err != nil {
		return nil, fmt.Errorf("deal not found: %w", err)
	}
	return &deal, nil
}

// GetSpotlight returns the top-picks selection: the active feed scored
// by verification, rating weight, engagement, urgency and proximity.
func (s *FeedService) GetSpotlight(coord *models.UserCoordinate, limit int) ([]models.Deal, error) {
	result, err := s.FetchFeed(models.FilterState{Category: models.CategoryAll}, nil, s.cfg.MaxDealsReturn)
	if err != nil {
		return nil, err
	}

	deals := result.Deals
	now := time.Now()
	scores := make(map[string]float64, len(deals))
	for i := range deals {
		scores[deals[i].ID] = spotlightScore(&deals[i], coord, now)
	}
	utils.StableSortBy(deals, func(a, b models.Deal) bool {
		return scores[a.ID] > scores[b.ID]
	})

	if limit <= 0 || limit > s.cfg.SpotlightLimit {
		limit = s.cfg.SpotlightLimit
	}
	if len(deals) > limit {
		deals = deals[:limit]
	}
	return deals, nil
}

// spotlightScore combines rating weight, engagement and urgency, with a
// verified multiplier and a boost for deals near the user.
func spotlightScore(deal *models.Deal, coord *models.UserCoordinate, now time.Time) float64 {
	score := deal.RatingOrZero() * float64(1+deal.RatingCount)
	score += float64(deal.Engagement()) * 0.1

	if deal.ValidTillDate != nil {
		daysLeft := deal.ValidTillDate.Sub(now).Hours() / 24
		if daysLeft >= 0 && daysLeft <= 7 {
			score += 7 - daysLeft // ending soon surfaces higher
		}
	}

	if deal.IsVerified {
		score *= 1.5
	}
	if coord != nil && deal.HasLocation() {
		if utils.IsWithinRadius(coord.Lat, coord.Lng, *deal.Latitude, *deal.Longitude, 10) {
			score *= 1.25 // boost very local deals
		}
	}
	return score
}

// GetDealStats returns statistics about the deal database
func (s *FeedService) GetDealStats() (map[string]interface{}, error) {
	var totalCount, activeCount, verifiedCount, locatedCount int64

	s.db.Model(&models.Deal{}).Count(&totalCount)
	s.db.Model(&models.Deal{}).Where("status = ? OR status = ''", models.StatusActive).Count(&activeCount)
	s.db.Model(&models.Deal{}).Where("is_verified = ?", true).Count(&verifiedCount)
	s.db.Model(&models.Deal{}).Where("latitude IS NOT NULL AND longitude IS NOT NULL").Count(&locatedCount)

	var categories []string
	s.db.Model(&models.Deal{}).Distinct("category").Pluck("category", &categories)

	stats := map[string]interface{}{
		"total_deals":       totalCount,
		"active_deals":      activeCount,
		"verified_deals":    verifiedCount,
		"located_deals":     locatedCount,
		"unique_categories": len(categories),
	}
	return stats, nil
}

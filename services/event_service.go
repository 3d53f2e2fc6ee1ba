package services

import (
	"fmt"
	"log"
	"time"

	"deals-backend/config"
	"deals-backend/database"
	"deals-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventService struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewEventService creates a new event service instance
func NewEventService(cfg *config.Config) *EventService {
	return &EventService{
		db:  database.GetDB(),
		cfg: cfg,
	}
}

// RecordDealEvent stores an engagement event and bumps the matching
// counter on the deal, which the trending feed mode reads.
func (s *EventService) RecordDealEvent(dealID, eventType string, lat, lng float64, pagePath string) error {
	if !models.ValidEventType(eventType) {
		return fmt.Errorf("invalid event type: %s", eventType)
	}

	var deal models.Deal
	if err := s.db.Where("id = ?", dealID).First(&deal).Error; err != nil {
		return fmt.Errorf("deal not found: %w", err)
	}

	event := models.DealEvent{
		ID:        uuid.NewString(),
		DealID:    dealID,
		EventType: eventType,
		Latitude:  lat,
		Longitude: lng,
		PagePath:  pagePath,
		Timestamp: time.Now(),
	}
	if err := s.db.Create(&event).Error; err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}

	counter := "views"
	if eventType == models.EventTypeClick {
		counter = "clicks"
	}
	if err := s.db.Model(&models.Deal{}).Where("id = ?", dealID).
		Update(counter, gorm.Expr(counter+" + 1")).Error; err != nil {
		// The event row is already stored; a missed counter bump only
		// delays the trending signal.
		log.Printf("Failed to bump %s for deal %s: %v", counter, dealID, err)
	}

	return nil
}

// GetEventStats returns statistics about engagement events
func (s *EventService) GetEventStats() (map[string]interface{}, error) {
	var totalEvents, uniqueDeals, viewCount, clickCount int64

	s.db.Model(&models.DealEvent{}).Count(&totalEvents)
	s.db.Model(&models.DealEvent{}).Distinct("deal_id").Count(&uniqueDeals)
	s.db.Model(&models.DealEvent{}).Where("event_type = ?", models.EventTypeView).Count(&viewCount)
	s.db.Model(&models.DealEvent{}).Where("event_type = ?", models.EventTypeClick).Count(&clickCount)

	stats := map[string]interface{}{
		"total_events": totalEvents,
		"unique_deals": uniqueDeals,
		"views":        viewCount,
		"clicks":       clickCount,
	}
	return stats, nil
}

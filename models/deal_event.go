package models

import (
	"time"
)

// DealEvent represents a user interaction with a deal. Events feed the
// Views/Clicks counters that trending ranking reads.
type DealEvent struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	DealID    string    `gorm:"index:idx_deal_events" json:"deal_id"`
	EventType string    `gorm:"index:idx_event_type" json:"event_type"` // "view", "click"
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	PagePath  string    `json:"page_path,omitempty"`
	Timestamp time.Time `gorm:"index:idx_timestamp" json:"timestamp"`
}

// EventType constants
const (
	EventTypeView  = "view"
	EventTypeClick = "click"
)

// ValidEventType reports whether the event type is recordable.
func ValidEventType(eventType string) bool {
	return eventType == EventTypeView || eventType == EventTypeClick
}

// EventRequest represents an incoming engagement event.
type EventRequest struct {
	DealID    string  `json:"deal_id" binding:"required"`
	EventType string  `json:"event_type" binding:"required"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	PagePath  string  `json:"page_path"`
}

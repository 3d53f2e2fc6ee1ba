package models

import (
	"time"
)

// Deal statuses. An empty status means the record predates the status
// column and is treated as active.
const (
	StatusActive = "active"
	StatusPaused = "paused"
)

// Deal represents a time-bound local offer in the database.
// Optional fields (coordinates, expiry, rating) are pointers so callers
// must handle their absence explicitly; an unlocated deal can never be
// part of a proximity or map view.
type Deal struct {
	ID            string     `gorm:"primaryKey" json:"id" validate:"required"`
	Title         string     `gorm:"index:idx_title" json:"title" validate:"required"`
	Description   string     `json:"description"`
	City          string     `json:"city"`
	Area          string     `json:"area"`
	Category      string     `gorm:"index:idx_category" json:"category"`
	Image         string     `json:"image,omitempty" validate:"omitempty,url"`
	OfferPrice    string     `json:"offer_price,omitempty"`
	OriginalPrice string     `json:"original_price,omitempty"`
	DiscountLabel string     `json:"discount_label,omitempty"`
	Latitude      *float64   `gorm:"index:idx_location" json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64   `gorm:"index:idx_location" json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	ValidTillDate *time.Time `gorm:"index:idx_valid_till" json:"valid_till_date,omitempty"`
	Rating        *float64   `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	RatingCount   int        `json:"rating_count" validate:"gte=0"`
	Views         int        `json:"views" validate:"gte=0"`
	Clicks        int        `json:"clicks" validate:"gte=0"`
	IsVerified    bool       `gorm:"index:idx_verified" json:"is_verified"`
	Status        string     `gorm:"index:idx_status" json:"status,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	Distance      float64    `gorm:"-" json:"distance,omitempty"` // Computed, not stored
}

// HasLocation reports whether the deal carries usable coordinates.
func (d *Deal) HasLocation() bool {
	return d.Latitude != nil && d.Longitude != nil
}

// IsActive reports whether the deal belongs in the public feed.
// An unknown (empty) status does not exclude a deal.
func (d *Deal) IsActive() bool {
	return d.Status == "" || d.Status == StatusActive
}

// IsExpired reports whether the deal's validity window has passed at the
// given instant. Deals without an expiry date never expire.
func (d *Deal) IsExpired(now time.Time) bool {
	return d.ValidTillDate != nil && d.ValidTillDate.Before(now)
}

// RatingOrZero returns the rating, treating a missing rating as 0 for
// top-rated ordering.
func (d *Deal) RatingOrZero() float64 {
	if d.Rating == nil {
		return 0
	}
	return *d.Rating
}

// Engagement returns the combined engagement signal used by trending.
func (d *Deal) Engagement() int {
	return d.Clicks + d.Views
}

// DealResponse is the API shape for a deal, enriched with computed
// presentation fields.
type DealResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	City          string     `json:"city"`
	Area          string     `json:"area"`
	Category      string     `json:"category"`
	CategoryLabel string     `json:"category_label"`
	Image         string     `json:"image,omitempty"`
	OfferLine     string     `json:"offer_line,omitempty"`
	UrgencyLabel  string     `json:"urgency_label,omitempty"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	ValidTillDate *time.Time `json:"valid_till_date,omitempty"`
	Rating        *float64   `json:"rating,omitempty"`
	RatingCount   int        `json:"rating_count"`
	Views         int        `json:"views"`
	Clicks        int        `json:"clicks"`
	IsVerified    bool       `json:"is_verified"`
	Distance      float64    `json:"distance,omitempty"`
	Highlight     string     `json:"highlight,omitempty"`
}

// Sortable accessors used by the generic helpers in utils.

// GetID returns the deal ID for score map lookups.
func (d Deal) GetID() string {
	return d.ID
}

// GetCreatedAtUnix returns the creation time as a Unix timestamp.
func (d Deal) GetCreatedAtUnix() int64 {
	return d.CreatedAt.Unix()
}

// GetDistance returns the computed distance for sorting.
func (d Deal) GetDistance() float64 {
	return d.Distance
}

// SetDistance sets the computed distance (pointer receiver so the
// generic distance helpers can write it back).
func (d *Deal) SetDistance(dist float64) {
	d.Distance = dist
}

// GetLatitude returns the latitude, or 0 for unlocated deals. Callers
// must check HasLocation first; the distance helpers only see deals that
// passed that check.
func (d Deal) GetLatitude() float64 {
	if d.Latitude == nil {
		return 0
	}
	return *d.Latitude
}

// GetLongitude returns the longitude, or 0 for unlocated deals.
func (d Deal) GetLongitude() float64 {
	if d.Longitude == nil {
		return 0
	}
	return *d.Longitude
}

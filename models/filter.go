package models

// FeedMode names the sort strategy applied to the filtered deal list.
type FeedMode string

const (
	FeedForYou     FeedMode = "for-you"
	FeedTopRated   FeedMode = "top-rated"
	FeedEndingSoon FeedMode = "ending-soon"
	FeedTrending   FeedMode = "trending"
)

// ValidFeedMode reports whether the given mode is one of the named feed
// modes. An empty mode is valid and treated as for-you.
func ValidFeedMode(mode FeedMode) bool {
	switch mode {
	case "", FeedForYou, FeedTopRated, FeedEndingSoon, FeedTrending:
		return true
	}
	return false
}

// FilterState is the plain configuration value describing one viewing
// session's filters. It is never persisted.
type FilterState struct {
	Category     string
	SearchText   string
	RadiusKm     float64
	NearMeActive bool
	VerifiedOnly bool
	FeedMode     FeedMode
	ShowExpired  bool
}

// FeedRequest represents an incoming feed or map query.
type FeedRequest struct {
	Mode         FeedMode `form:"mode"`
	Category     string   `form:"category"`
	Query        string   `form:"query"`
	Latitude     float64  `form:"lat"`
	Longitude    float64  `form:"lng"`
	RadiusKm     float64  `form:"radius"`
	NearMe       bool     `form:"near_me"`
	VerifiedOnly bool     `form:"verified_only"`
	ShowExpired  bool     `form:"show_expired"`
	Limit        int      `form:"limit"`
}

// FeedResponse is the list-view response shape.
type FeedResponse struct {
	Deals    []DealResponse    `json:"deals"`
	Metadata *ResponseMetadata `json:"metadata"`
}

// PinsRequest represents an incoming map-pins query.
type PinsRequest struct {
	Zoom         float64 `form:"zoom" binding:"required"`
	Category     string  `form:"category"`
	Query        string  `form:"query"`
	Latitude     float64 `form:"lat"`
	Longitude    float64 `form:"lng"`
	RadiusKm     float64 `form:"radius"`
	NearMe       bool    `form:"near_me"`
	VerifiedOnly bool    `form:"verified_only"`
}

// PinsResponse is the map-view response shape.
type PinsResponse struct {
	Pins     []PinItem `json:"pins"`
	Zoom     float64   `json:"zoom"`
	Count    int       `json:"count"`
	Clusters int       `json:"clusters"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ResponseMetadata contains result-set information for API responses.
type ResponseMetadata struct {
	Count          int               `json:"count"`
	TotalAvailable int               `json:"total_available"`
	Query          string            `json:"query,omitempty"`
	Filters        map[string]string `json:"filters,omitempty"`
}

// NewResponseMetadata creates a ResponseMetadata.
func NewResponseMetadata(count, totalAvailable int, query string, filters map[string]string) *ResponseMetadata {
	return &ResponseMetadata{
		Count:          count,
		TotalAvailable: totalAvailable,
		Query:          query,
		Filters:        filters,
	}
}

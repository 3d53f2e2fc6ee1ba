package models

// Precision tags how a user coordinate was obtained.
type Precision string

const (
	PrecisionExact       Precision = "exact"
	PrecisionApproximate Precision = "approximate"
)

// UserCoordinate is the session-scoped resolved user position. It is
// produced by the location acquisition strategy and never persisted.
type UserCoordinate struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Precision Precision `json:"precision"`
}

// LocationStatus enumerates the acquisition state machine's states.
type LocationStatus string

const (
	LocationIdle       LocationStatus = "idle"
	LocationLoading    LocationStatus = "loading"
	LocationActive     LocationStatus = "active"
	LocationIPFallback LocationStatus = "ip-fallback"
	LocationDenied     LocationStatus = "denied"
	LocationError      LocationStatus = "error"
)

// LocationState is the observable state exposed to presentation layers.
type LocationState struct {
	Status     LocationStatus  `json:"status"`
	Coordinate *UserCoordinate `json:"coordinate,omitempty"`
}

// ActivateRequest carries client-reported geolocation results. A client
// that obtained a device position relays it here; one whose user refused
// the permission prompt sets Denied instead.
type ActivateRequest struct {
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lng"`
	Denied    bool     `json:"denied"`
}

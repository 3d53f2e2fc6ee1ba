package models

// PinItem is one marker on the map: either a single-deal pin or a
// cluster of nearby deals. Recomputed on every filter or zoom change and
// never persisted.
type PinItem struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Count       int     `json:"count"`
	IsCluster   bool    `json:"is_cluster"`
	HasVerified bool    `json:"has_verified"`
	Deals       []Deal  `json:"deals"`
}

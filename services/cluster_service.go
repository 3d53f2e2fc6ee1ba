package services

import (
	"sort"

	"deals-backend/models"
	"deals-backend/utils"
)

// Zoom thresholds and grid cell sizes for marker clustering. Hand-tuned
// values preserved for behavioral parity with the map UI.
const (
	// ClusterZoomCutoff is the default zoom level at or above which
	// every deal gets its own pin; markers are visually
	// distinguishable there. Overridable via CLUSTER_ZOOM_CUTOFF.
	ClusterZoomCutoff = 12.5

	cellSizeWide   = 0.08 // zoom < 9
	cellSizeMedium = 0.04 // 9 <= zoom < 11
	cellSizeTight  = 0.02 // 11 <= zoom < cutoff
)

// cellSizeForZoom picks the grid cell size (degrees) for a zoom level.
func cellSizeForZoom(zoom float64) float64 {
	switch {
	case zoom < 9:
		return cellSizeWide
	case zoom < 11:
		return cellSizeMedium
	default:
		return cellSizeTight
	}
}

// BuildPins groups the given deals into map pins for a zoom level
// using the default cutoff. See BuildPinsWithCutoff.
func BuildPins(deals []models.Deal, zoom float64) []models.PinItem {
	return BuildPinsWithCutoff(deals, zoom, ClusterZoomCutoff)
}

// BuildPinsWithCutoff groups the given deals into map pins for a zoom
// level. At or above the cutoff every located deal becomes its own pin;
// below it deals are bucketed into a zoom-dependent lat/lng grid, and
// buckets with more than one member collapse into a cluster pin at the
// members' centroid. Clusters never sub-cluster. Unlocated deals are
// skipped. Pure: the input is not mutated, and output order is
// deterministic.
func BuildPinsWithCutoff(deals []models.Deal, zoom, cutoff float64) []models.PinItem {
	if zoom >= cutoff {
		pins := make([]models.PinItem, 0, len(deals))
		for _, deal := range deals {
			if !deal.HasLocation() {
				continue
			}
			pins = append(pins, singlePin(deal))
		}
		return pins
	}

	cellSize := cellSizeForZoom(zoom)
	buckets := make(map[string][]models.Deal)
	keys := make([]string, 0)
	for _, deal := range deals {
		if !deal.HasLocation() {
			continue
		}
		key := utils.GridKey(*deal.Latitude, *deal.Longitude, cellSize)
		if _, seen := buckets[key]; !seen {
			keys = append(keys, key)
		}
		buckets[key] = append(buckets[key], deal)
	}
	sort.Strings(keys)

	pins := make([]models.PinItem, 0, len(keys))
	for _, key := range keys {
		members := buckets[key]
		if len(members) == 1 {
			pins = append(pins, singlePin(members[0]))
			continue
		}

		var sumLat, sumLng float64
		hasVerified := false
		for _, m := range members {
			sumLat += *m.Latitude
			sumLng += *m.Longitude
			if m.IsVerified {
				hasVerified = true
			}
		}
		n := float64(len(members))
		pins = append(pins, models.PinItem{
			Latitude:    sumLat / n,
			Longitude:   sumLng / n,
			Count:       len(members),
			IsCluster:   true,
			HasVerified: hasVerified,
			Deals:       members,
		})
	}
	return pins
}

func singlePin(deal models.Deal) models.PinItem {
	return models.PinItem{
		Latitude:    *deal.Latitude,
		Longitude:   *deal.Longitude,
		Count:       1,
		IsCluster:   false,
		HasVerified: deal.IsVerified,
		Deals:       []models.Deal{deal},
	}
}

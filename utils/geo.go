package utils

import (
	"fmt"
	"math"
)

// DistanceKm calculates the great-circle distance between two points on
// Earth using the Haversine formula. Returns distance in kilometers.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	const EarthRadiusKm = 6371.0

	// Convert degrees to radians
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	// Haversine formula
	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// GridKey buckets a coordinate into a fixed-size lat/lng grid cell by
// rounding each axis to the nearest multiple of cellSizeDeg. Used by
// marker clustering; deterministic and side-effect-free.
func GridKey(lat, lng, cellSizeDeg float64) string {
	latCell := int(math.Round(lat / cellSizeDeg))
	lngCell := int(math.Round(lng / cellSizeDeg))
	return fmt.Sprintf("%d:%d", latCell, lngCell)
}

// ValidateLocation checks if location coordinates are valid.
func ValidateLocation(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("invalid latitude: must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("invalid longitude: must be between -180 and 180")
	}
	return nil
}

// IsWithinRadius checks if a point is within a given radius (km) from a
// reference point.
func IsWithinRadius(refLat, refLng, pointLat, pointLng, radiusKm float64) bool {
	return DistanceKm(refLat, refLng, pointLat, pointLng) <= radiusKm
}

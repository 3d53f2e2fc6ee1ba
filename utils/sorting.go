package utils

import (
	"sort"
)

// SortOrder defines the direction of sorting
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// Locatable is implemented by types carrying a resolved coordinate and a
// writable computed distance.
type Locatable interface {
	GetID() string
	GetLatitude() float64
	GetLongitude() float64
	GetDistance() float64
	SetDistance(float64)
}

// StableSortBy sorts items in place with a stable sort so equal keys
// keep their relative order.
func StableSortBy[T any](items []T, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
}

// SortByDistanceFrom calculates distances from a reference point and
// sorts nearest first. Uses a pointer constraint so the computed
// distance can be written back onto each element.
func SortByDistanceFrom[T any, PT interface {
	*T
	Locatable
}](items []T, refLat, refLng float64) {
	for i := range items {
		ptr := PT(&items[i])
		ptr.SetDistance(DistanceKm(refLat, refLng, ptr.GetLatitude(), ptr.GetLongitude()))
	}
	sort.SliceStable(items, func(i, j int) bool {
		return PT(&items[i]).GetDistance() < PT(&items[j]).GetDistance()
	})
}

// FilterByDistance filters items within a radius (km) from a reference
// point, setting the computed distance on each kept item. Returns a new
// slice; the input is not reordered.
func FilterByDistance[T any, PT interface {
	*T
	Locatable
}](items []T, refLat, refLng, radiusKm float64) []T {
	filtered := make([]T, 0, len(items))
	for i := range items {
		ptr := PT(&items[i])
		dist := DistanceKm(refLat, refLng, ptr.GetLatitude(), ptr.GetLongitude())
		if dist <= radiusKm {
			ptr.SetDistance(dist)
			filtered = append(filtered, items[i])
		}
	}
	return filtered
}

// FilterByDistanceWithPredicate filters items within a radius with an
// additional condition.
func FilterByDistanceWithPredicate[T any, PT interface {
	*T
	Locatable
}](items []T, refLat, refLng, radiusKm float64, predicate func(PT) bool) []T {
	filtered := make([]T, 0, len(items))
	for i := range items {
		ptr := PT(&items[i])
		dist := DistanceKm(refLat, refLng, ptr.GetLatitude(), ptr.GetLongitude())
		if dist <= radiusKm && predicate(ptr) {
			ptr.SetDistance(dist)
			filtered = append(filtered, items[i])
		}
	}
	return filtered
}

package models

import "strings"

// CategoryOption pairs a canonical category value with its display label.
type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CategoryOptions is the canonical category set in display order.
var CategoryOptions = []CategoryOption{
	{Value: "food", Label: "Food & Dining"},
	{Value: "beauty-salon", Label: "Beauty & Salon"},
	{Value: "spa-wellness", Label: "Spa & Wellness"},
	{Value: "fitness-gym", Label: "Fitness & Gym"},
	{Value: "fashion-apparel", Label: "Fashion & Apparel"},
	{Value: "electronics-gadgets", Label: "Electronics & Gadgets"},
	{Value: "rentals-travel", Label: "Rentals & Travel"},
	{Value: "shopping", Label: "Shopping"},
	{Value: "home-services", Label: "Home Services"},
	{Value: "automotive", Label: "Automotive"},
	{Value: "entertainment", Label: "Entertainment"},
	{Value: "healthcare", Label: "Healthcare"},
}

// legacyCategoryMap folds legacy and synonym category strings stored on
// older deals into the canonical set. Static lookup, consulted at filter
// time.
var legacyCategoryMap = map[string]string{
	"food":                  "food",
	"salon":                 "beauty-salon",
	"beauty":                "beauty-salon",
	"beauty-salon":          "beauty-salon",
	"spa":                   "spa-wellness",
	"spa-wellness":          "spa-wellness",
	"gym":                   "fitness-gym",
	"fitness":               "fitness-gym",
	"fitness-gym":           "fitness-gym",
	"fashion":               "fashion-apparel",
	"fashion-apparel":       "fashion-apparel",
	"electronics":           "electronics-gadgets",
	"electronics-gadgets":   "electronics-gadgets",
	"rental bikes and cars": "rentals-travel",
	"rental bikes & cars":   "rentals-travel",
	"rentals-travel":        "rentals-travel",
	"shopping":              "shopping",
	"services":              "home-services",
	"home-services":         "home-services",
	"auto":                  "automotive",
	"automobile":            "automotive",
	"automotive":            "automotive",
	"pub":                   "entertainment",
	"entertainment":         "entertainment",
	"healthcare":            "healthcare",
}

// NormalizeCategory maps a raw category string to its canonical tag.
// Unknown categories pass through lowercased so they remain filterable.
func NormalizeCategory(category string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	if key == "" {
		return ""
	}
	if canonical, ok := legacyCategoryMap[key]; ok {
		return canonical
	}
	return key
}

// CategoryMatchesFilter reports whether a deal's category satisfies the
// filter value. "all" or an empty filter matches everything.
func CategoryMatchesFilter(category, filter string) bool {
	if filter == "" || filter == CategoryAll {
		return true
	}
	return NormalizeCategory(category) == NormalizeCategory(filter)
}

// CategoryLabel returns the display label for a category, title-casing
// unknown values word by word.
func CategoryLabel(category string) string {
	normalized := NormalizeCategory(category)
	for _, opt := range CategoryOptions {
		if opt.Value == normalized {
			return opt.Label
		}
	}
	parts := strings.FieldsFunc(category, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// CategoryAll is the filter value that disables category filtering.
const CategoryAll = "all"

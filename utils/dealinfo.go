package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// UrgencyLabel describes how close a deal is to expiring. Returns an
// empty string when the deal has no expiry or more than a week remains.
func UrgencyLabel(validTill *time.Time, now time.Time) string {
	if validTill == nil {
		return ""
	}
	days := int(math.Ceil(validTill.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		return "Expired"
	case days == 0:
		return "Ends today"
	case days == 1:
		return "1 day left"
	case days <= 7:
		return strconv.Itoa(days) + " days left"
	}
	return ""
}

// OfferLine joins the price components into a single display string,
// e.g. "Offer ₹199 · MRP ₹499 · 60% off".
func OfferLine(offerPrice, originalPrice, discountLabel string) string {
	bits := make([]string, 0, 3)
	if offerPrice != "" {
		bits = append(bits, "Offer "+offerPrice)
	}
	if originalPrice != "" {
		bits = append(bits, "MRP "+originalPrice)
	}
	if discountLabel != "" {
		bits = append(bits, discountLabel)
	}
	return strings.Join(bits, " · ")
}

// DealHealth scores listing completeness 0-100: image, coordinates, a
// usable description, an expiry date, and pricing each count equally.
func DealHealth(hasImage, hasLocation bool, description string, hasValidTill, hasPrice bool) int {
	checks := []bool{
		hasImage,
		hasLocation,
		len(strings.TrimSpace(description)) >= 30,
		hasValidTill,
		hasPrice,
	}
	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}
	return passed * 100 / len(checks)
}

package utils

import (
	"testing"
	"time"
)

func TestUrgencyLabel(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	days := func(d int) *time.Time {
		v := now.Add(time.Duration(d) * 24 * time.Hour)
		return &v
	}

	tests := []struct {
		name      string
		validTill *time.Time
		expected  string
	}{
		{"No expiry date", nil, ""},
		{"Already expired", days(-2), "Expired"},
		{"Ends within the day", days(0), "Ends today"},
		{"One day left", days(1), "1 day left"},
		{"Five days left", days(5), "5 days left"},
		{"Far future", days(30), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := UrgencyLabel(tt.validTill, now)
			if result != tt.expected {
				t.Errorf("UrgencyLabel() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestOfferLine(t *testing.T) {
	tests := []struct {
		name     string
		offer    string
		original string
		discount string
		expected string
	}{
		{"All parts", "₹199", "₹499", "60% off", "Offer ₹199 · MRP ₹499 · 60% off"},
		{"Offer only", "₹199", "", "", "Offer ₹199"},
		{"Discount only", "", "", "Flat 50% off", "Flat 50% off"},
		{"Nothing", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := OfferLine(tt.offer, tt.original, tt.discount)
			if result != tt.expected {
				t.Errorf("OfferLine() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestDealHealth(t *testing.T) {
	longDesc := "A description long enough to count toward listing health."

	tests := []struct {
		name     string
		image    bool
		location bool
		desc     string
		validTil bool
		price    bool
		expected int
	}{
		{"Complete listing", true, true, longDesc, true, true, 100},
		{"Empty listing", false, false, "", false, false, 0},
		{"Short description does not count", true, true, "too short", true, true, 80},
		{"Location and price only", false, true, "", false, true, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DealHealth(tt.image, tt.location, tt.desc, tt.validTil, tt.price)
			if result != tt.expected {
				t.Errorf("DealHealth() = %d, expected %d", result, tt.expected)
			}
		})
	}
}

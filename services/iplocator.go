package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"deals-backend/config"
	"deals-backend/models"
	"deals-backend/utils"
)

// IPAPILocator resolves an approximate coordinate from the caller's
// network address via an ipapi-style JSON endpoint.
type IPAPILocator struct {
	url     string
	retries int
	client  *http.Client
}

// NewIPAPILocator builds the locator from configuration.
func NewIPAPILocator(cfg *config.Config) *IPAPILocator {
	return &IPAPILocator{
		url:     cfg.IPGeoURL,
		retries: cfg.IPGeoRetries,
		client:  &http.Client{Timeout: cfg.IPGeoTimeout},
	}
}

// LookupByIP implements IPLocator. Best-effort: transient failures are
// retried with backoff, and any terminal failure is reported as an
// error for the acquisition strategy to absorb.
func (l *IPAPILocator) LookupByIP(ctx context.Context) (*models.UserCoordinate, error) {
	var body struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}

	err := utils.Retry(ctx, l.retries+1, 500*time.Millisecond, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
		if err != nil {
			return err
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("ip geolocation returned status %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&body)
	})
	if err != nil {
		return nil, fmt.Errorf("ip geolocation lookup: %w", err)
	}

	if verr := utils.ValidateLocation(body.Latitude, body.Longitude); verr != nil {
		return nil, fmt.Errorf("ip geolocation returned invalid coordinates: %w", verr)
	}

	return &models.UserCoordinate{
		Lat:       body.Latitude,
		Lng:       body.Longitude,
		Precision: models.PrecisionApproximate,
	}, nil
}

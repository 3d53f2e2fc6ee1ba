package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"deals-backend/config"
	"deals-backend/models"
	"deals-backend/utils"
)

// Provider outcomes distinguished by the acquisition strategy.
var (
	// ErrPermissionDenied means the user explicitly refused geolocation.
	ErrPermissionDenied = errors.New("geolocation permission denied")
	// ErrNoGeolocation means the platform has no geolocation capability.
	ErrNoGeolocation = errors.New("geolocation not available")
)

// PositionProvider resolves a precise device position. Implementations
// must respect the timeout and may serve a cached fix no older than
// maxAge.
type PositionProvider interface {
	CurrentPosition(ctx context.Context, timeout, maxAge time.Duration) (lat, lng float64, err error)
}

// IPLocator resolves an approximate position from the network address.
// Best-effort: a nil coordinate with an error is a normal outcome.
type IPLocator interface {
	LookupByIP(ctx context.Context) (*models.UserCoordinate, error)
}

// LocationService is the session-scoped location acquisition strategy:
// a sequential fallback machine over idle -> loading -> {active |
// ip-fallback | denied | error}. It performs the only I/O in the core;
// every provider failure is converted into a state value here and never
// propagated.
type LocationService struct {
	cfg       *config.Config
	ipLocator IPLocator

	mu         sync.Mutex
	status     models.LocationStatus
	coord      *models.UserCoordinate
	generation int
}

// NewLocationService creates a location service with the given IP
// fallback locator.
func NewLocationService(cfg *config.Config, ipLocator IPLocator) *LocationService {
	return &LocationService{
		cfg:       cfg,
		ipLocator: ipLocator,
		status:    models.LocationIdle,
	}
}

// State returns the current observable state.
func (s *LocationService) State() models.LocationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.LocationState{Status: s.status, Coordinate: s.coord}
}

// Activate runs the acquisition strategy with the given device position
// provider: cached coordinate, then device geolocation, then IP
// approximation. If a coordinate from an earlier activation is still
// held, acquisition is skipped entirely and the cached value is reused
// with its original precision. Returns the resulting state.
func (s *LocationService) Activate(ctx context.Context, position PositionProvider) models.LocationState {
	s.mu.Lock()
	s.generation++
	gen := s.generation

	if s.coord != nil {
		s.status = statusForPrecision(s.coord.Precision)
		state := models.LocationState{Status: s.status, Coordinate: s.coord}
		s.mu.Unlock()
		return state
	}

	s.status = models.LocationLoading
	s.mu.Unlock()

	status, coord := s.acquire(ctx, position)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		// Deactivated or re-activated while the lookup was in flight;
		// the stale result must not be applied.
		log.Printf("Discarding stale location result (%s)", status)
		return models.LocationState{Status: s.status, Coordinate: s.coord}
	}
	s.status = status
	s.coord = coord
	return models.LocationState{Status: s.status, Coordinate: s.coord}
}

// acquire runs the provider fallback chain without holding the lock.
func (s *LocationService) acquire(ctx context.Context, position PositionProvider) (models.LocationStatus, *models.UserCoordinate) {
	lat, lng, err := position.CurrentPosition(ctx, s.cfg.GeoTimeout, s.cfg.GeoMaxAge)
	if err == nil {
		if verr := utils.ValidateLocation(lat, lng); verr != nil {
			log.Printf("Device position rejected: %v", verr)
			return s.ipFallback(ctx, models.LocationError)
		}
		return models.LocationActive, &models.UserCoordinate{
			Lat:       lat,
			Lng:       lng,
			Precision: models.PrecisionExact,
		}
	}

	switch {
	case errors.Is(err, ErrPermissionDenied):
		// Denied still tries the IP approximation; only when that also
		// fails does the session end up denied.
		return s.ipFallback(ctx, models.LocationDenied)
	case errors.Is(err, ErrNoGeolocation):
		return s.ipFallback(ctx, models.LocationError)
	default:
		log.Printf("Device geolocation failed: %v", err)
		return s.ipFallback(ctx, models.LocationError)
	}
}

// ipFallback attempts the IP-based approximation, returning the given
// terminal status when it fails.
func (s *LocationService) ipFallback(ctx context.Context, onFailure models.LocationStatus) (models.LocationStatus, *models.UserCoordinate) {
	coord, err := s.ipLocator.LookupByIP(ctx)
	if err != nil || coord == nil {
		if err != nil {
			log.Printf("IP geolocation failed: %v", err)
		}
		return onFailure, nil
	}
	coord.Precision = models.PrecisionApproximate
	return models.LocationIPFallback, coord
}

// Deactivate returns the session to idle. The last resolved coordinate
// is retained so a later Activate can reuse it instantly with its
// original precision tag; only the activation itself is discarded.
func (s *LocationService) Deactivate() models.LocationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.status = models.LocationIdle
	return models.LocationState{Status: s.status, Coordinate: s.coord}
}

// Coordinate returns the resolved coordinate only while the session is
// in an activated state. Callers building filter state use this so a
// deactivated session never contributes proximity filtering.
func (s *LocationService) Coordinate() *models.UserCoordinate {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == models.LocationActive || s.status == models.LocationIPFallback {
		return s.coord
	}
	return nil
}

func statusForPrecision(p models.Precision) models.LocationStatus {
	if p == models.PrecisionApproximate {
		return models.LocationIPFallback
	}
	return models.LocationActive
}

// ClientPosition adapts client-reported geolocation results (relayed
// from the browser in the activate request) to the PositionProvider
// interface. A request with no coordinates and denied=true maps to a
// permission refusal; one with neither maps to missing capability.
type ClientPosition struct {
	Lat    *float64
	Lng    *float64
	Denied bool
}

// CurrentPosition implements PositionProvider. The client already
// applied the device-side timeout, so the arguments are unused here.
func (p ClientPosition) CurrentPosition(_ context.Context, _, _ time.Duration) (float64, float64, error) {
	if p.Denied {
		return 0, 0, ErrPermissionDenied
	}
	if p.Lat == nil || p.Lng == nil {
		return 0, 0, ErrNoGeolocation
	}
	return *p.Lat, *p.Lng, nil
}

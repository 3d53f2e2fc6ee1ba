package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"deals-backend/config"
	"deals-backend/models"
)

type fakePosition struct {
	lat, lng float64
	err      error
	calls    int
}

func (f *fakePosition) CurrentPosition(_ context.Context, _, _ time.Duration) (float64, float64, error) {
	f.calls++
	return f.lat, f.lng, f.err
}

type fakeIPLocator struct {
	coord *models.UserCoordinate
	err   error
	calls int
}

func (f *fakeIPLocator) LookupByIP(_ context.Context) (*models.UserCoordinate, error) {
	f.calls++
	return f.coord, f.err
}

// blockingPosition holds the lookup open until released, so tests can
// deactivate mid-flight.
type blockingPosition struct {
	release chan struct{}
	lat     float64
	lng     float64
}

func (b *blockingPosition) CurrentPosition(_ context.Context, _, _ time.Duration) (float64, float64, error) {
	<-b.release
	return b.lat, b.lng, nil
}

func testConfig() *config.Config {
	return &config.Config{
		GeoTimeout: 10 * time.Second,
		GeoMaxAge:  30 * time.Second,
	}
}

func TestActivatePreciseSuccess(t *testing.T) {
	ip := &fakeIPLocator{}
	svc := NewLocationService(testConfig(), ip)

	state := svc.Activate(context.Background(), &fakePosition{lat: 12.9716, lng: 77.5946})

	if state.Status != models.LocationActive {
		t.Fatalf("Expected active, got %s", state.Status)
	}
	if state.Coordinate == nil || state.Coordinate.Precision != models.PrecisionExact {
		t.Errorf("Expected exact coordinate, got %+v", state.Coordinate)
	}
	if ip.calls != 0 {
		t.Error("IP fallback should not run after a precise success")
	}
}

func TestActivateDeniedWithIPFallback(t *testing.T) {
	ip := &fakeIPLocator{coord: &models.UserCoordinate{Lat: 12.9, Lng: 77.5}}
	svc := NewLocationService(testConfig(), ip)

	state := svc.Activate(context.Background(), &fakePosition{err: ErrPermissionDenied})

	// Denial followed by a successful IP lookup ends in ip-fallback,
	// not denied.
	if state.Status != models.LocationIPFallback {
		t.Fatalf("Expected ip-fallback, got %s", state.Status)
	}
	if state.Coordinate == nil || state.Coordinate.Lat != 12.9 || state.Coordinate.Lng != 77.5 {
		t.Errorf("Expected IP coordinate (12.9, 77.5), got %+v", state.Coordinate)
	}
	if state.Coordinate.Precision != models.PrecisionApproximate {
		t.Errorf("IP coordinate must be approximate, got %s", state.Coordinate.Precision)
	}
}

func TestActivateDeniedWithoutIPFallback(t *testing.T) {
	ip := &fakeIPLocator{err: errors.New("service unreachable")}
	svc := NewLocationService(testConfig(), ip)

	state := svc.Activate(context.Background(), &fakePosition{err: ErrPermissionDenied})

	if state.Status != models.LocationDenied {
		t.Errorf("Expected denied, got %s", state.Status)
	}
	if state.Coordinate != nil {
		t.Errorf("No coordinate expected, got %+v", state.Coordinate)
	}
}

func TestActivateNoGeolocationSkipsToIP(t *testing.T) {
	ip := &fakeIPLocator{coord: &models.UserCoordinate{Lat: 12.9, Lng: 77.5}}
	svc := NewLocationService(testConfig(), ip)

	state := svc.Activate(context.Background(), &fakePosition{err: ErrNoGeolocation})

	if state.Status != models.LocationIPFallback {
		t.Errorf("Expected ip-fallback, got %s", state.Status)
	}
	if ip.calls != 1 {
		t.Errorf("Expected one IP lookup, got %d", ip.calls)
	}
}

func TestActivateEverythingFails(t *testing.T) {
	ip := &fakeIPLocator{err: errors.New("service unreachable")}
	svc := NewLocationService(testConfig(), ip)

	state := svc.Activate(context.Background(), &fakePosition{err: errors.New("timeout")})

	if state.Status != models.LocationError {
		t.Errorf("Expected error state, got %s", state.Status)
	}
}

func TestDeactivateRetainsCoordinateForReactivation(t *testing.T) {
	ip := &fakeIPLocator{coord: &models.UserCoordinate{Lat: 12.9, Lng: 77.5}}
	svc := NewLocationService(testConfig(), ip)
	pos := &fakePosition{err: ErrPermissionDenied}

	svc.Activate(context.Background(), pos)
	state := svc.Deactivate()

	if state.Status != models.LocationIdle {
		t.Fatalf("Expected idle after deactivate, got %s", state.Status)
	}
	if svc.Coordinate() != nil {
		t.Error("Coordinate must not be exposed while idle")
	}

	// Reactivation reuses the cached coordinate with its original
	// precision and performs no acquisition at all.
	state = svc.Activate(context.Background(), pos)
	if state.Status != models.LocationIPFallback {
		t.Fatalf("Expected ip-fallback from cached coordinate, got %s", state.Status)
	}
	if state.Coordinate == nil || state.Coordinate.Precision != models.PrecisionApproximate {
		t.Errorf("Cached coordinate lost its precision tag: %+v", state.Coordinate)
	}
	if pos.calls != 1 || ip.calls != 1 {
		t.Errorf("Reactivation should skip acquisition, got %d position and %d IP calls", pos.calls, ip.calls)
	}
}

func TestLateResultDiscardedAfterDeactivate(t *testing.T) {
	svc := NewLocationService(testConfig(), &fakeIPLocator{})
	pos := &blockingPosition{release: make(chan struct{}), lat: 12.9716, lng: 77.5946}

	done := make(chan models.LocationState, 1)
	go func() {
		done <- svc.Activate(context.Background(), pos)
	}()

	// Wait for the activation to enter loading, then deactivate while
	// the device lookup is still in flight.
	for i := 0; i < 100; i++ {
		if svc.State().Status == models.LocationLoading {
			break
		}
		time.Sleep(time.Millisecond)
	}
	svc.Deactivate()
	close(pos.release)
	<-done

	state := svc.State()
	if state.Status != models.LocationIdle {
		t.Errorf("Stale result was applied: status %s", state.Status)
	}
	if state.Coordinate != nil {
		t.Errorf("Stale coordinate was committed: %+v", state.Coordinate)
	}
}

func TestCoordinateOnlyInActivatedStates(t *testing.T) {
	svc := NewLocationService(testConfig(), &fakeIPLocator{err: errors.New("down")})

	if svc.Coordinate() != nil {
		t.Error("Idle session must not report a coordinate")
	}

	svc.Activate(context.Background(), &fakePosition{err: ErrPermissionDenied})
	if svc.Coordinate() != nil {
		t.Error("Denied session must not report a coordinate")
	}

	svc.Activate(context.Background(), &fakePosition{lat: 12.9716, lng: 77.5946})
	if svc.Coordinate() == nil {
		t.Error("Active session must report its coordinate")
	}
}

// Package geo exposes the device-location capability used to complete a
// registration.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tutorlink/client/internal/model"
)

// DefaultTimeout bounds a single location request.
const DefaultTimeout = 10 * time.Second

// Locator is a single-shot location request. Fixes are never cached; every
// call asks the capability again.
type Locator interface {
	Locate(ctx context.Context) (model.Coordinates, error)
}

// HTTPLocator resolves the client's position from a geolocation HTTP
// endpoint. The endpoint must answer with {"lon": ..., "lat": ...}.
type HTTPLocator struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
}

var _ Locator = (*HTTPLocator)(nil)

func NewHTTPLocator(endpoint string, timeout time.Duration) *HTTPLocator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPLocator{
		endpoint: endpoint,
		client:   &http.Client{},
		timeout:  timeout,
	}
}

// Locate requests one fix. Every failure mode (unreachable endpoint,
// non-200, malformed body, sentinel (0,0) answer) maps to
// model.ErrLocationUnavailable so callers can surface one message and let
// the user retry.
func (l *HTTPLocator) Locate(ctx context.Context) (model.Coordinates, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("build location request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return model.Coordinates{}, model.ErrLocationUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Coordinates{}, model.ErrLocationUnavailable
	}

	var fix struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&fix); err != nil {
		return model.Coordinates{}, model.ErrLocationUnavailable
	}

	coords := model.Coordinates{Longitude: fix.Lon, Latitude: fix.Lat}
	if !coords.Captured() {
		return model.Coordinates{}, model.ErrLocationUnavailable
	}

	return coords, nil
}

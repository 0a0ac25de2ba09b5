// Package geocode provides the address lookup collaborator: forward and
// reverse geocoding against a Nominatim-compatible HTTP API. Lookups are
// best-effort; the audit workflow never blocks or fails on them.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Techy233/FSE1/internal/config"
)

// ErrNoMatch is returned when a forward lookup finds nothing for the query.
var ErrNoMatch = errors.New("geocode: no match for address")

// Location is a resolved geographic position.
type Location struct {
	Lat         float64
	Lng         float64
	DisplayName string
}

// Client talks to the configured geocoding API.
type Client struct {
	config     config.GeocoderConfig
	httpClient *http.Client
}

// NewClient creates a geocoding client. The HTTP timeout comes from the
// config.
func NewClient(cfg config.GeocoderConfig) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// IsAvailable reports whether a geocoding endpoint is configured.
func (c *Client) IsAvailable() bool {
	return c.config.BaseURL != ""
}

// searchResult matches the Nominatim search/reverse response shape.
// Coordinates arrive as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Lookup resolves a free-text address to coordinates and a formatted
// address.
func (c *Client) Lookup(ctx context.Context, address string) (*Location, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")

	var results []searchResult
	if err := c.get(ctx, "/search", q, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, address)
	}
	return results[0].toLocation()
}

// Reverse resolves coordinates to a display address. Callers fall back to
// FallbackLabel when this fails.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	q.Set("lon", strconv.FormatFloat(lng, 'f', 6, 64))
	q.Set("format", "json")

	var result searchResult
	if err := c.get(ctx, "/reverse", q, &result); err != nil {
		return "", err
	}
	if result.DisplayName == "" {
		return "", fmt.Errorf("geocode: empty reverse result for %.6f, %.6f", lat, lng)
	}
	return result.DisplayName, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("geocode: building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("geocode: decoding response: %w", err)
	}
	return nil
}

func (r searchResult) toLocation() (*Location, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad latitude %q: %w", r.Lat, err)
	}
	lng, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad longitude %q: %w", r.Lon, err)
	}
	return &Location{Lat: lat, Lng: lng, DisplayName: r.DisplayName}, nil
}

// FallbackLabel renders coordinates as a plain address label, used when
// reverse lookup fails or geocoding is disabled.
func FallbackLabel(lat, lng float64) string {
	return fmt.Sprintf("%.6f, %.6f", lat, lng)
}

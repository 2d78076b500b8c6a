// Package geomapping is an HTTP client for the external mapping provider used
// to geocode shift addresses and compute driving routes.
package geomapping

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/apperrors"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	portssvc "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/services"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a geomapping client. An empty baseURL yields a client whose
// calls fail with apperrors.ErrUnavailable, so callers degrade gracefully when
// the provider is not configured.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

var _ portssvc.GeomappingProvider = (*Client)(nil)

type geocodeResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type routeResponse struct {
	DistanceMeters  float64 `json:"distanceMeters"`
	DurationSeconds float64 `json:"durationSeconds"`
}

// Geocode resolves a street address to coordinates.
func (c *Client) Geocode(ctx context.Context, address string) (*domain.Coordinates, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: geomapping provider not configured", apperrors.ErrUnavailable)
	}

	endpoint := fmt.Sprintf("%s/v1/geocode?address=%s", c.baseURL, url.QueryEscape(address))
	var resp geocodeResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("%w: no geocode result for address", apperrors.ErrNotFound)
	}
	return &domain.Coordinates{Lat: resp.Results[0].Latitude, Lon: resp.Results[0].Longitude}, nil
}

// RouteDistance returns the driving distance in metres and the travel duration
// between two coordinates.
func (c *Client) RouteDistance(ctx context.Context, origin, dest domain.Coordinates) (float64, time.Duration, error) {
	if c.baseURL == "" {
		return 0, 0, fmt.Errorf("%w: geomapping provider not configured", apperrors.ErrUnavailable)
	}

	endpoint := fmt.Sprintf("%s/v1/route?originLat=%f&originLon=%f&destLat=%f&destLon=%f",
		c.baseURL, origin.Lat, origin.Lon, dest.Lat, dest.Lon)
	var resp routeResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return 0, 0, err
	}
	return resp.DistanceMeters, time.Duration(resp.DurationSeconds * float64(time.Second)), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build geomapping request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Geomapping request failed", slog.String("error", err.Error()))
		return fmt.Errorf("%w: geomapping request failed", apperrors.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Geomapping provider returned non-OK status", slog.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: geomapping provider returned status %d", apperrors.ErrUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode geomapping response", apperrors.ErrUnavailable)
	}
	return nil
}

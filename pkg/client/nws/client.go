// Package nws is a minimal client for the National Weather Service API.
// All failures (transport, status, body, decode) collapse into an absent
// result: callers treat a false ok as "unavailable" and never retry here.
package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aksops/aks-mcp-server/pkg/logging"
)

const (
	// DefaultBaseURL is the public NWS API origin.
	DefaultBaseURL = "https://api.weather.gov"

	userAgent      = "weather-app/1.0"
	acceptHeader   = "application/geo+json"
	requestTimeout = 30 * time.Second
)

// Client fetches NWS resources with a bounded per-request timeout.
type Client struct {
	// BaseURL is overridable for tests.
	BaseURL string

	httpClient *http.Client
}

// NewClient creates a client against the public NWS API.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Get fetches url and decodes the JSON body into out. It returns false on
// any failure; the cause is logged at debug level and otherwise swallowed.
func (c *Client) Get(ctx context.Context, url string, out interface{}) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logging.Debug("NWS request build failed for %s: %v", url, err)
		return false
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Debug("NWS request failed for %s: %v", url, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Debug("NWS request for %s returned status %d", url, resp.StatusCode)
		return false
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logging.Debug("NWS response decode failed for %s: %v", url, err)
		return false
	}
	return true
}

// ActiveAlerts fetches the active alerts for a US state or marine area code.
func (c *Client) ActiveAlerts(ctx context.Context, area string) (*AlertsResponse, bool) {
	var alerts AlertsResponse
	if !c.Get(ctx, fmt.Sprintf("%s/alerts/active/area/%s", c.BaseURL, area), &alerts) {
		return nil, false
	}
	return &alerts, true
}

// Points resolves a coordinate to its forecast grid metadata.
func (c *Client) Points(ctx context.Context, latitude, longitude float64) (*PointsResponse, bool) {
	url := fmt.Sprintf("%s/points/%s,%s",
		c.BaseURL,
		strconv.FormatFloat(latitude, 'f', -1, 64),
		strconv.FormatFloat(longitude, 'f', -1, 64),
	)
	var points PointsResponse
	if !c.Get(ctx, url, &points) {
		return nil, false
	}
	return &points, true
}

// Forecast fetches the forecast document at the URL returned by Points.
func (c *Client) Forecast(ctx context.Context, url string) (*ForecastResponse, bool) {
	var forecast ForecastResponse
	if !c.Get(ctx, url, &forecast) {
		return nil, false
	}
	return &forecast, true
}

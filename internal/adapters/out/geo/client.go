// Package geo implements the distance estimator port against a
// distance-matrix style HTTP service. Distances come back in meters and are
// converted to miles; resolved legs are cached for the lifetime of the client
// so repeated waypoint pairs inside one session cost a single lookup.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"dispatch/internal/pkg/errs"
)

const (
	metersPerMile = 1609.344

	defaultTimeout = 10 * time.Second
)

// Client resolves route distances over HTTP. It implements
// ports.DistanceEstimator.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	mu    sync.Mutex
	cache map[string]float64
}

// NewClient creates a distance client for the given service URL. The API key
// may be empty when the target service does not require one. A nil HTTP
// client falls back to one with a sane timeout.
func NewClient(baseURL string, apiKey string, httpClient *http.Client) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		cache:      make(map[string]float64),
	}, nil
}

// EstimateDistance resolves the total driving distance, in miles, of a route
// visiting the waypoints in order. It issues one lookup per leg and sums the
// results.
func (c *Client) EstimateDistance(ctx context.Context, waypoints []string) (float64, error) {
	if len(waypoints) < 2 {
		return 0, errs.NewValueIsInvalidError("waypoints")
	}

	var totalMiles float64
	for i := 0; i < len(waypoints)-1; i++ {
		miles, err := c.legDistance(ctx, waypoints[i], waypoints[i+1])
		if err != nil {
			return 0, err
		}
		totalMiles += miles
	}
	return totalMiles, nil
}

func (c *Client) legDistance(ctx context.Context, origin, destination string) (float64, error) {
	key := origin + "|" + destination

	c.mu.Lock()
	miles, ok := c.cache[key]
	c.mu.Unlock()
	if ok {
		return miles, nil
	}

	meters, err := c.fetchLegMeters(ctx, origin, destination)
	if err != nil {
		return 0, err
	}
	miles = meters / metersPerMile

	c.mu.Lock()
	c.cache[key] = miles
	c.mu.Unlock()

	return miles, nil
}

// matrixResponse mirrors the distance-matrix wire format. Only the fields the
// client reads are declared.
type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

func (c *Client) fetchLegMeters(ctx context.Context, origin, destination string) (float64, error) {
	params := url.Values{}
	params.Set("origins", origin)
	params.Set("destinations", destination)
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	requestURL := c.baseURL + "/maps/api/distancematrix/json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("distance service responded with status %d", resp.StatusCode)
	}

	var result matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("decode distance matrix response: %w", err)
	}

	if result.Status != "OK" {
		return 0, fmt.Errorf("distance lookup failed with status %q", result.Status)
	}
	if len(result.Rows) == 0 || len(result.Rows[0].Elements) == 0 {
		return 0, errs.NewObjectNotFoundError("distance", origin+" -> "+destination)
	}
	element := result.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, errs.NewObjectNotFoundError("distance", origin+" -> "+destination)
	}

	return element.Distance.Value, nil
}

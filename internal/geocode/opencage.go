package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	opencageBaseURL = "https://api.opencagedata.com/geocode/v1/json"

	// requestTimeout bounds the provider call; a timeout is reported as an
	// ordinary error and callers treat it the same as "no location".
	requestTimeout = 5 * time.Second
)

// ErrMissingAPIKey is returned when the client was constructed without a
// credential. No network call is attempted in that case.
var ErrMissingAPIKey = errors.New("opencage: no API key configured")

// OpenCage is a Geocoder backed by the OpenCage forward-geocoding API.
type OpenCage struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// Ensure OpenCage implements Geocoder
var _ Geocoder = (*OpenCage)(nil)

// NewOpenCage returns a client using the given API key. The key comes from
// configuration; an empty key yields a client whose every lookup fails with
// ErrMissingAPIKey.
func NewOpenCage(apiKey string) *OpenCage {
	return &OpenCage{
		apiKey:  apiKey,
		baseURL: opencageBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// opencageResponse covers the slice of the provider's JSON we consume.
// Results arrive ranked best-first.
type opencageResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
		Components struct {
			CountryCode string `json:"country_code"`
		} `json:"components"`
	} `json:"results"`
}

// Geocode queries the provider for the given region description and returns
// the first (provider-ranked) match, or (nil, nil) on an empty result set.
func (g *OpenCage) Geocode(ctx context.Context, query string) (*Match, error) {
	if g.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", g.apiKey)
	params.Set("limit", "1")
	params.Set("no_annotations", "1")

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("opencage: build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("opencage: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("opencage: unexpected status %d", resp.StatusCode)
	}

	var body opencageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("opencage: decode response: %w", err)
	}

	if len(body.Results) == 0 {
		return nil, nil
	}

	best := body.Results[0]
	return &Match{
		Latitude:    best.Geometry.Lat,
		Longitude:   best.Geometry.Lng,
		CountryCode: strings.ToUpper(best.Components.CountryCode),
	}, nil
}

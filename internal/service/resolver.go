// Package service composes the parser, geocoder, and stores into the
// operations exposed over HTTP.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phonetrace/phonetrace/internal/geocode"
	"github.com/phonetrace/phonetrace/internal/metrics"
	"github.com/phonetrace/phonetrace/internal/models"
	"github.com/phonetrace/phonetrace/internal/phone"
)

// ErrResolutionFailed covers unexpected internal errors during orchestration.
// The diagnostic detail stays in logs; callers only see the sentinel.
var ErrResolutionFailed = errors.New("resolution failed")

// Defaults applied when the numbering plan has no entry for a number.
const (
	unknownRegion  = "Unknown Region"
	privateCarrier = "Private Carrier"
)

// Resolver orchestrates one "resolve a phone number" operation: parse and
// classify locally, then geocode the region description. Geocoding failures
// degrade the result to no-location; they never fail the resolution.
type Resolver struct {
	parser   *phone.Parser
	geocoder geocode.Geocoder
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewResolver creates a resolver over the given parser and geocoder.
// metrics may be nil.
func NewResolver(parser *phone.Parser, geocoder geocode.Geocoder, m *metrics.Metrics, logger *slog.Logger) *Resolver {
	return &Resolver{
		parser:   parser,
		geocoder: geocoder,
		metrics:  m,
		logger:   logger,
	}
}

// Resolve turns a raw phone-number string into a ResolutionResult. It is
// total over arbitrary input: the return is always either a result or one of
// phone.ErrInvalidNumber / ErrResolutionFailed, never a panic.
func (r *Resolver) Resolve(ctx context.Context, raw string) (result *models.ResolutionResult, err error) {
	// The provider libraries are pure but not under our control; a panic
	// here must surface as a typed failure, not a crash or a stack trace in
	// the response.
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Resolver panicked", "panic", rec)
			result, err = nil, ErrResolutionFailed
			r.metrics.ObserveResolution("failed")
		}
	}()

	info, err := r.parser.Parse(raw)
	if err != nil {
		r.metrics.ObserveResolution("invalid_number")
		return nil, err
	}

	result = &models.ResolutionResult{
		Number:   info.Number,
		Location: info.Region,
		Carrier:  info.Carrier,
		Timezone: info.Timezones[0],
		LineType: info.LineType,
		IsValid:  true,
	}
	if result.Location == "" {
		result.Location = unknownRegion
	}
	if result.Carrier == "" {
		result.Carrier = privateCarrier
	}

	// Geocode the region description, never the number itself. Only a real
	// description is worth a lookup.
	if info.Region != "" {
		r.geocodeInto(ctx, info.Region, result)
	}

	r.metrics.ObserveResolution("resolved")
	return result, nil
}

// geocodeInto fills coordinates, country code, and the map link from the best
// geocoding match. Errors and empty results leave the result untouched.
func (r *Resolver) geocodeInto(ctx context.Context, region string, result *models.ResolutionResult) {
	start := time.Now()
	match, err := r.geocoder.Geocode(ctx, region)
	if err != nil {
		r.metrics.ObserveGeocode("error", time.Since(start))
		r.logger.Warn("Geocoding failed, continuing without location", "region", region, "error", err)
		return
	}
	if match == nil {
		r.metrics.ObserveGeocode("no_match", time.Since(start))
		r.logger.Debug("Geocoding returned no results", "region", region)
		return
	}
	r.metrics.ObserveGeocode("match", time.Since(start))

	result.Latitude = &match.Latitude
	result.Longitude = &match.Longitude
	if match.CountryCode != "" {
		cc := match.CountryCode
		result.CountryCode = &cc
	}
	result.MapURL = mapURL(match.Latitude, match.Longitude)
}

// mapURL builds an OpenStreetMap link centered on the coordinates so clients
// can embed a marker without any server-side tile rendering.
func mapURL(lat, lng float64) string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.6f&mlon=%.6f#map=10/%.6f/%.6f", lat, lng, lat, lng)
}

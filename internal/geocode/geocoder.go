// Package geocode resolves free-text region descriptions to coordinates via
// an external geocoding provider.
package geocode

import "context"

// Match is the best forward-geocoding result for a query.
type Match struct {
	Latitude    float64
	Longitude   float64
	CountryCode string // ISO code, upper case
}

// Geocoder resolves a textual region description to at most one best match.
// Implementations return (nil, nil) when the provider has no result for the
// query; errors cover network, credential, and provider failures. Callers own
// the decision to degrade errors to "no location".
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*Match, error)
}

package models

// LineType is the coarse category of phone service for a number.
type LineType string

// Line types surfaced to clients. Provider taxonomies are wider; anything
// outside these buckets classifies as LineTypeUnknown.
const (
	LineTypeMobile    LineType = "Mobile"
	LineTypeFixedLine LineType = "Fixed Line"
	LineTypeVoIP      LineType = "VoIP"
	LineTypeTollFree  LineType = "Toll Free"
	LineTypeUnknown   LineType = "Unknown"
)

// ResolutionResult is the assembled outcome of resolving a raw phone number:
// parser-derived metadata plus the best geocoding match, if any.
type ResolutionResult struct {
	// Number is the canonical international display form.
	Number string `json:"number"`

	// Location is the region description, "Unknown Region" when the
	// numbering plan has no description for the number.
	Location string `json:"location"`

	// Carrier is the service-provider name, "Private Carrier" when unknown.
	Carrier string `json:"carrier"`

	// Timezone is the primary IANA zone for the number's region, "UTC" when
	// none is known.
	Timezone string `json:"timezone"`

	// Latitude and Longitude are either both set or both nil. They stay nil
	// whenever geocoding returned nothing.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	// CountryCode is the upper-cased ISO code from the geocoding match.
	CountryCode *string `json:"country_code"`

	// LineType is the coarse service category.
	LineType LineType `json:"line_type"`

	// MapURL is an embeddable map link for the coordinates, empty when no
	// coordinates are known. Rendering is left to the client.
	MapURL string `json:"map_url,omitempty"`

	// IsValid is always true for a successfully assembled result.
	IsValid bool `json:"is_valid"`
}

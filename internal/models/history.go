package models

// HistoryRecord is one persisted phone resolution, owned by exactly one
// account. Records are immutable after creation and deletable only by their
// owner.
type HistoryRecord struct {
	// ID is the unique numeric identifier assigned by the store.
	ID int64 `json:"id"`

	// AccountID is the owning account. Ownership never transfers.
	AccountID int64 `json:"-"`

	// PhoneNumber is the canonical international form of the number.
	PhoneNumber string `json:"phone_number"`

	// Location is the human-readable region description.
	Location string `json:"location"`

	// Carrier is the service-provider name.
	Carrier string `json:"carrier"`

	// Latitude and Longitude are either both set or both nil.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	// CountryCode is the ISO country code from geocoding, nil when the
	// coordinates are unknown.
	CountryCode *string `json:"country_code"`

	// LineType is the coarse service category, see LineType constants.
	LineType LineType `json:"line_type"`

	// CreatedAt is the Unix timestamp when the resolution was performed.
	CreatedAt int64 `json:"created_at"`
}

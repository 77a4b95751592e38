// Package phone normalizes raw phone-number strings into structured metadata
// using the bundled libphonenumber dataset. It performs no network I/O.
package phone

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/phonetrace/phonetrace/internal/models"
)

// ErrInvalidNumber indicates the input could not be parsed as a valid phone
// number, even after the default-region retry.
var ErrInvalidNumber = errors.New("not a valid phone number")

// Info is the structured metadata derived from a successfully parsed number.
type Info struct {
	// Number is the canonical international display form,
	// e.g. "+1 415-555-2671".
	Number string

	// LineType is the coarse service category.
	LineType models.LineType

	// Region is the human-readable description of the number's assigned
	// region. May be empty when the numbering plan has no entry.
	Region string

	// Carrier is the service-provider name. Often empty for ported, fixed,
	// or VoIP numbers.
	Carrier string

	// Timezones holds the IANA zones for the number's region, never empty:
	// when none are known it contains just "UTC".
	Timezones []string
}

// Parser turns raw strings into Info values. The zero value is not usable;
// construct with NewParser.
type Parser struct {
	defaultRegion string
}

// NewParser returns a Parser that retries inputs lacking an explicit country
// code prefix against the given ISO region (e.g. "US").
func NewParser(defaultRegion string) *Parser {
	return &Parser{defaultRegion: strings.ToUpper(strings.TrimSpace(defaultRegion))}
}

// Parse attempts to parse raw with no assumed region first, so inputs with an
// explicit "+<cc>" prefix resolve on their own. Inputs without the prefix get
// one retry against the configured default region. Anything still invalid
// fails with ErrInvalidNumber.
func (p *Parser) Parse(raw string) (*Info, error) {
	trimmed := strings.TrimSpace(raw)

	parsed, err := phonenumbers.Parse(trimmed, "")
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		if strings.HasPrefix(trimmed, "+") {
			return nil, ErrInvalidNumber
		}
		parsed, err = phonenumbers.Parse(trimmed, p.defaultRegion)
		if err != nil || !phonenumbers.IsValidNumber(parsed) {
			return nil, ErrInvalidNumber
		}
	}

	region, _ := phonenumbers.GetGeocodingForNumber(parsed, "en")
	carrier, _ := phonenumbers.GetCarrierForNumber(parsed, "en")
	zones, err := phonenumbers.GetTimezonesForNumber(parsed)
	if err != nil || len(zones) == 0 {
		zones = []string{"UTC"}
	}

	return &Info{
		Number:    phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL),
		LineType:  lineType(phonenumbers.GetNumberType(parsed)),
		Region:    region,
		Carrier:   carrier,
		Timezones: zones,
	}, nil
}

// Validate reports whether raw parses as a valid number on its own, with no
// default-region fallback. Used by the public validation endpoint.
func (p *Parser) Validate(raw string) bool {
	parsed, err := phonenumbers.Parse(strings.TrimSpace(raw), "")
	return err == nil && phonenumbers.IsValidNumber(parsed)
}

// lineType maps the provider taxonomy onto the fixed enumeration surfaced to
// clients. FIXED_LINE_OR_MOBILE (common across NANP regions) intentionally
// maps to Unknown along with every other unlisted type.
func lineType(t phonenumbers.PhoneNumberType) models.LineType {
	switch t {
	case phonenumbers.MOBILE:
		return models.LineTypeMobile
	case phonenumbers.FIXED_LINE:
		return models.LineTypeFixedLine
	case phonenumbers.VOIP:
		return models.LineTypeVoIP
	case phonenumbers.TOLL_FREE:
		return models.LineTypeTollFree
	default:
		return models.LineTypeUnknown
	}
}

package phone

import (
	"errors"
	"testing"

	"github.com/phonetrace/phonetrace/internal/models"
)

func TestParse(t *testing.T) {
	parser := NewParser("US")

	tests := []struct {
		name         string
		input        string
		wantErr      bool
		wantNumber   string
		wantLineType models.LineType
	}{
		{
			name:         "international US number parses without fallback",
			input:        "+14155552671",
			wantNumber:   "+1 415-555-2671",
			wantLineType: models.LineTypeUnknown, // NANP numbers report fixed-line-or-mobile
		},
		{
			name:         "international toll free number",
			input:        "+18002345678",
			wantNumber:   "+1 800-234-5678",
			wantLineType: models.LineTypeTollFree,
		},
		{
			name:         "UK mobile number",
			input:        "+447700900123",
			wantNumber:   "+44 7700 900123",
			wantLineType: models.LineTypeMobile,
		},
		{
			name:         "national format resolves via default region",
			input:        "2024561111",
			wantNumber:   "+1 202-456-1111",
			wantLineType: models.LineTypeUnknown,
		},
		{
			name:    "too short for default region",
			input:   "5551234",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage input",
			input:   "not-a-number",
			wantErr: true,
		},
		{
			name:    "explicit prefix but invalid gets no retry",
			input:   "+9991234",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := parser.Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidNumber) {
					t.Fatalf("Parse(%q) error = %v, want ErrInvalidNumber", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if info.Number != tt.wantNumber {
				t.Errorf("Number = %q, want %q", info.Number, tt.wantNumber)
			}
			if info.LineType != tt.wantLineType {
				t.Errorf("LineType = %q, want %q", info.LineType, tt.wantLineType)
			}
			if len(info.Timezones) == 0 {
				t.Error("Expected at least one timezone")
			}
		})
	}
}

func TestParseDerivedMetadata(t *testing.T) {
	parser := NewParser("US")

	info, err := parser.Parse("+14155552671")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if info.Region == "" {
		t.Error("Expected a region description for a valid US number")
	}

	found := false
	for _, zone := range info.Timezones {
		if zone == "America/Los_Angeles" {
			found = true
		}
	}
	if !found {
		t.Errorf("Timezones = %v, want to contain America/Los_Angeles", info.Timezones)
	}
}

func TestValidate(t *testing.T) {
	parser := NewParser("US")

	tests := []struct {
		input string
		want  bool
	}{
		{"+14155552671", true},
		{"+447700900123", true},
		{"2024561111", false}, // no fallback on validation
		{"banana", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := parser.Validate(tt.input); got != tt.want {
			t.Errorf("Validate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

package aqi

import (
	"math"
	"reflect"
	"testing"
)

func TestValidateRangeBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		reading  Reading
		valid    bool
		expected []string
	}{
		{
			name:    "empty reading is valid",
			reading: Reading{},
			valid:   true,
		},
		{
			name: "all fields at range edges",
			reading: Reading{
				PM25:        fp(1000),
				PM10:        fp(0),
				Temperature: fp(60),
				Humidity:    fp(100),
			},
			valid: true,
		},
		{
			name:     "temperature just above range",
			reading:  Reading{Temperature: fp(60.1)},
			valid:    false,
			expected: []string{"temperature: Value 60.1 outside valid range -40-60"},
		},
		{
			name:     "temperature just below range",
			reading:  Reading{Temperature: fp(-40.5)},
			valid:    false,
			expected: []string{"temperature: Value -40.5 outside valid range -40-60"},
		},
		{
			name:     "pm25 above range",
			reading:  Reading{PM25: fp(1500)},
			valid:    false,
			expected: []string{"pm25: Value 1500 outside valid range 0-1000"},
		},
		{
			name:     "negative humidity",
			reading:  Reading{Humidity: fp(-1)},
			valid:    false,
			expected: []string{"humidity: Value -1 outside valid range 0-100"},
		},
		{
			name:     "non-finite value",
			reading:  Reading{PM10: fp(math.NaN())},
			valid:    false,
			expected: []string{"pm10: Invalid numeric value"},
		},
		{
			name:     "bad timestamp",
			reading:  Reading{Timestamp: "yesterday-ish"},
			valid:    false,
			expected: []string{"Invalid timestamp format"},
		},
		{
			name: "errors accumulate in field order",
			reading: Reading{
				Timestamp:   "not-a-time",
				PM25:        fp(-3),
				Temperature: fp(75),
			},
			valid: false,
			expected: []string{
				"pm25: Value -3 outside valid range 0-1000",
				"temperature: Value 75 outside valid range -40-60",
				"Invalid timestamp format",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, errs := Validate(tt.reading)
			if valid != tt.valid {
				t.Errorf("expected valid=%v, got %v (errors: %v)", tt.valid, valid, errs)
			}
			if len(tt.expected) == 0 {
				if len(errs) != 0 {
					t.Errorf("expected no errors, got %v", errs)
				}
				return
			}
			if !reflect.DeepEqual(errs, tt.expected) {
				t.Errorf("expected errors %v, got %v", tt.expected, errs)
			}
		})
	}
}

func TestValidateDoesNotMutate(t *testing.T) {
	v := 75.0
	r := Reading{Temperature: &v}
	Validate(r)
	if *r.Temperature != 75.0 {
		t.Errorf("validation mutated the reading: %v", *r.Temperature)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	r := Reading{Timestamp: "bad", PM25: fp(2000)}
	_, first := Validate(r)
	_, second := Validate(r)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated validation diverged: %v vs %v", first, second)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2024-05-01T10:00:00Z", true},
		{"2024-05-01T10:00:00+05:30", true},
		{"2024-05-01T10:00:00", true},
		{"2024-05-01 10:00:00", true},
		{"01/05/2024", false},
		{"", false},
	}

	for _, tt := range tests {
		_, err := ParseTimestamp(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("ParseTimestamp(%q): ok=%v, want %v", tt.input, err == nil, tt.ok)
		}
	}
}

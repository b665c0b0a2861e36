package aqi

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Valid ranges per field. Values outside these ranges mark a reading
// invalid but stay on the reading as advisory data.
type fieldRange struct {
	min, max float64
}

var (
	pm25Range        = fieldRange{0, 1000}
	pm10Range        = fieldRange{0, 2000}
	temperatureRange = fieldRange{-40, 60}
	humidityRange    = fieldRange{0, 100}
)

// timestampLayouts are the accepted timestamp formats, tried in order.
// ThingSpeak-style feeds deliver RFC 3339.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Validate checks a reading's fields against their declared ranges and its
// timestamp against the accepted formats. It returns whether the reading is
// valid and the accumulated error messages in field order (pm25, pm10,
// temperature, humidity, timestamp). Absent (nil) fields are not failures:
// a reading with no fields at all is valid. Validate never mutates the
// reading.
func Validate(r Reading) (bool, []string) {
	var errs []string

	errs = checkField(errs, "pm25", r.PM25, pm25Range)
	errs = checkField(errs, "pm10", r.PM10, pm10Range)
	errs = checkField(errs, "temperature", r.Temperature, temperatureRange)
	errs = checkField(errs, "humidity", r.Humidity, humidityRange)

	if r.Timestamp != "" {
		if _, err := ParseTimestamp(r.Timestamp); err != nil {
			errs = append(errs, "Invalid timestamp format")
		}
	}

	return len(errs) == 0, errs
}

func checkField(errs []string, name string, v *float64, rng fieldRange) []string {
	if v == nil {
		return errs
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return append(errs, fmt.Sprintf("%s: Invalid numeric value", name))
	}
	if *v < rng.min || *v > rng.max {
		return append(errs, fmt.Sprintf("%s: Value %s outside valid range %s-%s",
			name, formatValue(*v), formatValue(rng.min), formatValue(rng.max)))
	}
	return errs
}

// formatValue renders a float the way it was written: no trailing zeros,
// no exponent for ordinary sensor magnitudes.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseTimestamp parses a reading timestamp, trying each accepted layout.
func ParseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

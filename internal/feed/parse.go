package feed

import (
	"math"
	"strconv"
	"strings"
)

// ParseNullableFloat converts a raw feed field into a nullable numeric
// value. Feeds deliver numerics as strings and represent "not reported" in
// several ways; all of them, and anything unparseable, map to nil. Parsing
// never fails: bad input is "no value", not an error.
func ParseNullableFloat(s *string) *float64 {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	switch strings.ToLower(trimmed) {
	case "null", "undefined", "nan":
		return nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

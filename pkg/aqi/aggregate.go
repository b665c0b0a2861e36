package aqi

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// periodPattern matches aggregation period specs of the form "<n><unit>"
// where unit is m (minutes), h (hours) or d (days), e.g. "15m", "1h", "7d".
var periodPattern = regexp.MustCompile(`^(\d+)([mhd])$`)

// DefaultPeriod is the bucket width used when a period spec does not parse.
const DefaultPeriod = time.Hour

// ParsePeriod converts a period spec into a bucket width. Unrecognized
// specs (including a zero count) fall back to DefaultPeriod.
func ParsePeriod(spec string) time.Duration {
	m := periodPattern.FindStringSubmatch(spec)
	if m == nil {
		return DefaultPeriod
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n == 0 {
		return DefaultPeriod
	}
	switch m[2] {
	case "m":
		return time.Duration(n) * time.Minute
	case "h":
		return time.Duration(n) * time.Hour
	default:
		return time.Duration(n) * 24 * time.Hour
	}
}

// Aggregate folds readings into fixed-width time buckets keyed by the
// floor-divided timestamp. Grouping is a function of the timestamp only;
// a reading's validity does not affect inclusion, but nil and non-finite
// field values are excluded from that field's statistics. Readings whose
// timestamp cannot be parsed have no bucket and are skipped.
//
// The returned buckets are sorted ascending by bucket start time
// regardless of input order. Empty input yields an empty slice.
func Aggregate(readings []ProcessedReading, periodSpec string) []AggregateBucket {
	width := ParsePeriod(periodSpec).Milliseconds()

	groups := make(map[int64][]ProcessedReading)
	for _, r := range readings {
		ts, err := ParseTimestamp(r.Timestamp)
		if err != nil {
			continue
		}
		key := ts.UnixMilli() / width * width
		groups[key] = append(groups[key], r)
	}

	buckets := make([]AggregateBucket, 0, len(groups))
	for key, group := range groups {
		b := AggregateBucket{
			Timestamp:   time.UnixMilli(key).UTC(),
			Count:       len(group),
			Temperature: fieldStats(group, func(r ProcessedReading) *float64 { return r.Temperature }),
			Humidity:    fieldStats(group, func(r ProcessedReading) *float64 { return r.Humidity }),
			PM25:        fieldStats(group, func(r ProcessedReading) *float64 { return r.PM25 }),
			PM10:        fieldStats(group, func(r ProcessedReading) *float64 { return r.PM10 }),
		}

		if b.PM25 != nil {
			avg := b.PM25.Avg
			b.AirQuality = &BucketAirQuality{
				PM25:   ClassifyPM25(avg),
				EPAAQI: CalculateEPAAQI(&avg),
			}
		}

		buckets = append(buckets, b)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Timestamp.Before(buckets[j].Timestamp)
	})

	return buckets
}

// fieldStats summarizes one metric across a bucket's readings, or returns
// nil when the bucket held no usable values for it.
func fieldStats(group []ProcessedReading, value func(ProcessedReading) *float64) *FieldStats {
	var vals []float64
	for _, r := range group {
		if v := value(r); v != nil && isFinite(*v) {
			vals = append(vals, *v)
		}
	}
	if len(vals) == 0 {
		return nil
	}

	sort.Float64s(vals)

	return &FieldStats{
		Avg:    math.Round(stat.Mean(vals, nil)*100) / 100,
		Min:    floats.Min(vals),
		Max:    floats.Max(vals),
		Median: median(vals),
		Count:  len(vals),
	}
}

// median of an already-sorted slice: middle element for odd counts, mean
// of the middle pair for even counts.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

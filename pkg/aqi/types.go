// Package aqi provides air quality analysis for particulate sensor data:
// reading validation, EPA Air Quality Index calculation from PM2.5
// concentrations, pollutant and thermal comfort classification, and
// time-bucketed aggregation with summary statistics.
//
// Every function in this package is pure and safe for concurrent use. The
// breakpoint and threshold tables are immutable constants; no invocation
// reads or writes shared state.
package aqi

import "time"

// Reading is a single point-in-time sensor sample as delivered by the feed
// layer. Numeric fields are nil when the sensor did not report them.
type Reading struct {
	Timestamp   string   `json:"timestamp"`
	PM25        *float64 `json:"pm25"`
	PM10        *float64 `json:"pm10"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
}

// ProcessedReading is a Reading plus everything the analyzer derives from it.
type ProcessedReading struct {
	Reading
	Valid            bool                 `json:"valid"`
	ValidationErrors []string             `json:"validationErrors,omitempty"`
	EPAAQI           *AQIResult           `json:"epaAqi"`
	AirQuality       AirQualityAssessment `json:"airQuality"`
	Comfort          *ComfortResult       `json:"comfort,omitempty"`
}

// Category describes one of the six EPA AQI tiers.
type Category struct {
	Name         string `json:"name"`
	Color        string `json:"color"`
	Description  string `json:"description"`
	HealthAdvice string `json:"healthAdvice"`
}

// AQIResult is the outcome of an EPA AQI calculation.
type AQIResult struct {
	Value     int      `json:"value"`
	Category  Category `json:"category"`
	PM25Value float64  `json:"pm25Value"`
}

// Level is a pollutant classification tier, ordered from good to hazardous.
type Level string

const (
	LevelGood               Level = "good"
	LevelModerate           Level = "moderate"
	LevelUnhealthySensitive Level = "unhealthy_sensitive"
	LevelUnhealthy          Level = "unhealthy"
	LevelVeryUnhealthy      Level = "very_unhealthy"
	LevelHazardous          Level = "hazardous"
)

// Classification is a per-pollutant tier with display metadata. PM2.5 and
// PM10 share the same levels and colors even though their concentration
// scales differ, so the two can be color-coded consistently.
type Classification struct {
	Level       Level  `json:"level"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// OverallAQI reports which pollutant dominates a reading.
type OverallAQI struct {
	AQI               int      `json:"aqi"`
	DominantPollutant *string  `json:"dominantPollutant"`
	Category          Category `json:"category"`
}

// AirQualityAssessment groups the per-pollutant and overall classifications.
type AirQualityAssessment struct {
	PM25    *Classification `json:"pm25"`
	PM10    *Classification `json:"pm10"`
	Overall OverallAQI      `json:"overall"`
}

// FieldComfort is a single metric's value with its comfort band tag.
type FieldComfort struct {
	Value   float64 `json:"value"`
	Comfort string  `json:"comfort"`
}

// OverallComfort is the combined comfort verdict for a reading.
type OverallComfort struct {
	Level       string `json:"level"`
	Description string `json:"description"`
}

// ComfortResult is the thermal comfort assessment for a reading that has
// both temperature and humidity.
type ComfortResult struct {
	Temperature FieldComfort   `json:"temperature"`
	Humidity    FieldComfort   `json:"humidity"`
	HeatIndex   float64        `json:"heatIndex"`
	Overall     OverallComfort `json:"overall"`
}

// FieldStats summarizes the non-nil values of one metric within a bucket.
type FieldStats struct {
	Avg    float64 `json:"avg"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Count  int     `json:"count"`
}

// BucketAirQuality is the air quality derived from a bucket's PM2.5 average.
type BucketAirQuality struct {
	PM25   Classification `json:"pm25"`
	EPAAQI *AQIResult     `json:"epaAqi"`
}

// AggregateBucket is one fixed-width time bucket of aggregated readings.
// A per-field stats pointer is nil when the bucket held no values for it.
type AggregateBucket struct {
	Timestamp   time.Time         `json:"timestamp"`
	Count       int               `json:"count"`
	Temperature *FieldStats       `json:"temperature"`
	Humidity    *FieldStats       `json:"humidity"`
	PM25        *FieldStats       `json:"pm25"`
	PM10        *FieldStats       `json:"pm10"`
	AirQuality  *BucketAirQuality `json:"airQuality,omitempty"`
}

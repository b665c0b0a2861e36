package aqi

import "math"

// ClassifyPM25 classifies a PM2.5 concentration (µg/m³) into one of the six
// classification tiers.
func ClassifyPM25(value float64) Classification {
	return classify(value, pm25Thresholds)
}

// ClassifyPM10 classifies a PM10 concentration (µg/m³). The thresholds
// differ from PM2.5 but the tiers and colors are shared.
func ClassifyPM10(value float64) Classification {
	return classify(value, pm10Thresholds)
}

func classify(value float64, thresholds []band) Classification {
	level := Level(scanBands(value, thresholds, string(LevelHazardous)))
	meta := levelMeta[level]
	return Classification{
		Level:       level,
		Description: meta.description,
		Color:       meta.color,
	}
}

// CalculateOverallAQI determines the dominant pollutant of a processed
// reading. The real PM2.5 AQI is compared against a coarse tier-based
// estimate for PM10; the higher number wins and ties favor PM2.5. When
// neither pollutant has data the result is AQI 0 with no dominant
// pollutant.
func CalculateOverallAQI(p ProcessedReading) OverallAQI {
	overall := 0
	var dominant *string

	if p.EPAAQI != nil {
		overall = p.EPAAQI.Value
		name := "pm25"
		dominant = &name
	}

	if p.AirQuality.PM10 != nil {
		if est, ok := estimatedAQIByLevel[p.AirQuality.PM10.Level]; ok && est > overall {
			overall = est
			name := "pm10"
			dominant = &name
		}
	}

	return OverallAQI{
		AQI:               overall,
		DominantPollutant: dominant,
		Category:          GetAQICategory(overall),
	}
}

// Severity reports a level's position in the good..hazardous ordering.
func (l Level) Severity() int {
	return levelSeverity[l]
}

// Process runs the full analysis pipeline over a single reading:
// validation, EPA AQI, per-pollutant classification, overall dominance and
// thermal comfort. It never fails on malformed data; problems surface in
// ValidationErrors while the remaining fields are computed best-effort.
func Process(r Reading) ProcessedReading {
	valid, errs := Validate(r)
	p := ProcessedReading{
		Reading:          r,
		Valid:            valid,
		ValidationErrors: errs,
	}

	p.EPAAQI = CalculateEPAAQI(r.PM25)

	if r.PM25 != nil && isFinite(*r.PM25) {
		c := ClassifyPM25(*r.PM25)
		p.AirQuality.PM25 = &c
	}
	if r.PM10 != nil && isFinite(*r.PM10) {
		c := ClassifyPM10(*r.PM10)
		p.AirQuality.PM10 = &c
	}
	p.AirQuality.Overall = CalculateOverallAQI(p)

	if r.Temperature != nil && r.Humidity != nil &&
		isFinite(*r.Temperature) && isFinite(*r.Humidity) {
		c := CalculateComfort(*r.Temperature, *r.Humidity)
		p.Comfort = &c
	}

	return p
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

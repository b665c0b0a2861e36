package aqi

// EPA breakpoint bands and classification threshold tables. The PM2.5
// concentration bands are reproduced exactly as published by the EPA,
// including the one-tenth-unit gap between adjacent bands (12.0 ends the
// first band, 12.1 starts the second). The gap is authoritative and must
// not be "fixed" to a contiguous range.

type breakpoint struct {
	cLow, cHigh   float64
	aqiLow, aqiHigh float64
}

// EPA breakpoints for 24-hour PM2.5 averages (µg/m³)
var pm25Breakpoints = []breakpoint{
	{0.0, 12.0, 0, 50},
	{12.1, 35.4, 51, 100},
	{35.5, 55.4, 101, 150},
	{55.5, 150.4, 151, 200},
	{150.5, 250.4, 201, 300},
	{250.5, 500.4, 301, 500},
}

// maxPM25Concentration is the top of the last EPA band; concentrations
// beyond it clamp to AQI 500.
const maxPM25Concentration = 500.4

type categoryTier struct {
	maxAQI   int
	category Category
}

// aqiCategories maps AQI ranges to their display tiers. Values above 300
// (including anything beyond 500) resolve to Hazardous.
var aqiCategories = []categoryTier{
	{50, Category{
		Name:         "Good",
		Color:        "#00E400",
		Description:  "Air quality is satisfactory",
		HealthAdvice: "Air quality poses little or no risk. Enjoy outdoor activities.",
	}},
	{100, Category{
		Name:         "Moderate",
		Color:        "#FFFF00",
		Description:  "Air quality is acceptable",
		HealthAdvice: "Unusually sensitive people should consider reducing prolonged outdoor exertion.",
	}},
	{150, Category{
		Name:         "Unhealthy for Sensitive Groups",
		Color:        "#FF7E00",
		Description:  "Sensitive groups may experience health effects",
		HealthAdvice: "Children, the elderly, and people with respiratory conditions should limit outdoor exertion.",
	}},
	{200, Category{
		Name:         "Unhealthy",
		Color:        "#FF0000",
		Description:  "Everyone may begin to experience health effects",
		HealthAdvice: "Everyone should reduce prolonged outdoor exertion; sensitive groups should avoid it.",
	}},
	{300, Category{
		Name:         "Very Unhealthy",
		Color:        "#8F3F97",
		Description:  "Health alert: everyone may experience more serious health effects",
		HealthAdvice: "Everyone should avoid outdoor exertion and stay indoors when possible.",
	}},
}

var hazardousCategory = Category{
	Name:         "Hazardous",
	Color:        "#7E0023",
	Description:  "Health warning of emergency conditions",
	HealthAdvice: "Everyone should remain indoors with windows closed and avoid all physical activity outdoors.",
}

// GetAQICategory returns the AQI category tier for a given AQI value. It is
// total over integers >= 0; values above 500 still resolve to Hazardous.
func GetAQICategory(aqi int) Category {
	for _, tier := range aqiCategories {
		if aqi <= tier.maxAQI {
			return tier.category
		}
	}
	return hazardousCategory
}

// band is one entry of an ordered classification table: values at or below
// max (or strictly below, when exclusive) belong to the band's tag. Every
// tiered classification in this package evaluates as a single "first band
// containing the value" scan over one of these tables, so the tables cannot
// drift apart from the scan logic.
type band struct {
	max       float64
	exclusive bool
	tag       string
}

// scanBands returns the tag of the first band containing v, or fallback
// when v is beyond every band.
func scanBands(v float64, bands []band, fallback string) string {
	for _, b := range bands {
		if b.exclusive {
			if v < b.max {
				return b.tag
			}
		} else if v <= b.max {
			return b.tag
		}
	}
	return fallback
}

// WHO-guideline-derived classification thresholds per pollutant. The last
// tier (hazardous) is the fallback beyond the listed bounds.
var pm25Thresholds = []band{
	{max: 12, tag: string(LevelGood)},
	{max: 35.4, tag: string(LevelModerate)},
	{max: 55.4, tag: string(LevelUnhealthySensitive)},
	{max: 150.4, tag: string(LevelUnhealthy)},
	{max: 250.4, tag: string(LevelVeryUnhealthy)},
	{max: 500.4, tag: string(LevelHazardous)},
}

var pm10Thresholds = []band{
	{max: 54, tag: string(LevelGood)},
	{max: 154, tag: string(LevelModerate)},
	{max: 254, tag: string(LevelUnhealthySensitive)},
	{max: 354, tag: string(LevelUnhealthy)},
	{max: 424, tag: string(LevelVeryUnhealthy)},
	{max: 604, tag: string(LevelHazardous)},
}

// levelMeta carries the shared display metadata for classification levels.
// Colors match the EPA category colors so pollutant tiles and AQI gauges
// agree visually.
var levelMeta = map[Level]struct {
	description string
	color       string
}{
	LevelGood:               {"Good", "#00E400"},
	LevelModerate:           {"Moderate", "#FFFF00"},
	LevelUnhealthySensitive: {"Unhealthy for Sensitive Groups", "#FF7E00"},
	LevelUnhealthy:          {"Unhealthy", "#FF0000"},
	LevelVeryUnhealthy:      {"Very Unhealthy", "#8F3F97"},
	LevelHazardous:          {"Hazardous", "#7E0023"},
}

// levelSeverity orders classification levels for dominance comparisons.
var levelSeverity = map[Level]int{
	LevelGood:               0,
	LevelModerate:           1,
	LevelUnhealthySensitive: 2,
	LevelUnhealthy:          3,
	LevelVeryUnhealthy:      4,
	LevelHazardous:          5,
}

// estimatedAQIByLevel is a coarse per-tier AQI proxy used when comparing a
// PM10 classification against a real PM2.5 AQI. It is deliberately not an
// interpolation; PM10 only needs to be rankable against PM2.5.
var estimatedAQIByLevel = map[Level]int{
	LevelGood:               25,
	LevelModerate:           75,
	LevelUnhealthySensitive: 125,
	LevelUnhealthy:          175,
	LevelVeryUnhealthy:      250,
	LevelHazardous:          350,
}

package aqi

import "math"

// Thermal comfort bands. Temperature is split into seven tiers and
// humidity into five; both are evaluated with the same band scan used by
// the pollutant tables.
var temperatureBands = []band{
	{max: 10, exclusive: true, tag: "very_cold"},
	{max: 16, exclusive: true, tag: "cold"},
	{max: 20, exclusive: true, tag: "cool"},
	{max: 26, tag: "comfortable"},
	{max: 30, tag: "warm"},
	{max: 35, tag: "hot"},
}

var humidityBands = []band{
	{max: 30, exclusive: true, tag: "very_dry"},
	{max: 40, exclusive: true, tag: "dry"},
	{max: 60, tag: "comfortable"},
	{max: 70, tag: "humid"},
}

// Rothfusz regression coefficients for the heat index, in Celsius form.
// Reproduced exactly as published; do not re-derive or refactor the terms.
const (
	hiC1 = -8.78469475556
	hiC2 = 1.61139411
	hiC3 = 2.33854883889
	hiC4 = -0.14611605
	hiC5 = -0.012308094
	hiC6 = -0.0164248277778
	hiC7 = 0.002211732
	hiC8 = 0.00072546
	hiC9 = -0.000003582
)

// CalculateComfort assesses thermal comfort from temperature (°C) and
// relative humidity (%). Both values are required; callers omit the comfort
// assessment entirely when either is missing.
func CalculateComfort(temperature, humidity float64) ComfortResult {
	hi := heatIndex(temperature, humidity)

	return ComfortResult{
		Temperature: FieldComfort{
			Value:   temperature,
			Comfort: scanBands(temperature, temperatureBands, "very_hot"),
		},
		Humidity: FieldComfort{
			Value:   humidity,
			Comfort: scanBands(humidity, humidityBands, "very_humid"),
		},
		HeatIndex: hi,
		Overall:   overallComfort(temperature, humidity, hi),
	}
}

// heatIndex applies the Rothfusz regression when the air is both hot and
// humid enough for it to be meaningful (>= 27°C and >= 40% RH); otherwise
// the heat index is simply the air temperature. The regression result is
// rounded to one decimal.
func heatIndex(t, h float64) float64 {
	if t < 27 || h < 40 {
		return t
	}
	hi := hiC1 + hiC2*t + hiC3*h + hiC4*t*h +
		hiC5*t*t + hiC6*h*h + hiC7*t*t*h +
		hiC8*t*h*h + hiC9*t*t*h*h
	return math.Round(hi*10) / 10
}

// overallComfort produces the combined verdict. The checks run in a fixed
// priority order and the first match wins: temperature extremes beat
// humidity extremes beat heat index.
func overallComfort(t, h, hi float64) OverallComfort {
	switch {
	case t < 16:
		return OverallComfort{Level: "uncomfortable", Description: "Too cold"}
	case t > 30:
		return OverallComfort{Level: "uncomfortable", Description: "Too hot"}
	case h < 30:
		return OverallComfort{Level: "moderate", Description: "Too dry"}
	case h > 70:
		return OverallComfort{Level: "moderate", Description: "Too humid"}
	case hi > 32:
		return OverallComfort{Level: "uncomfortable", Description: "High heat index"}
	default:
		return OverallComfort{Level: "comfortable", Description: "Comfortable conditions"}
	}
}

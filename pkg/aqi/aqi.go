package aqi

import "math"

// CalculateEPAAQI calculates the EPA Air Quality Index from a PM2.5
// concentration (µg/m³) using linear interpolation within the published
// breakpoint bands. It returns nil when the input is nil or not a finite
// number. Concentrations above 500.4 clamp to AQI 500.
//
// Negative concentrations fall through every band and return nil: the AQI
// is undefined for them, not zero. Callers must not substitute 0.
func CalculateEPAAQI(pm25 *float64) *AQIResult {
	if pm25 == nil {
		return nil
	}
	pm := *pm25
	if math.IsNaN(pm) || math.IsInf(pm, 0) {
		return nil
	}

	if pm > maxPM25Concentration {
		return &AQIResult{
			Value:     500,
			Category:  GetAQICategory(500),
			PM25Value: pm,
		}
	}

	for _, bp := range pm25Breakpoints {
		if pm >= bp.cLow && pm <= bp.cHigh {
			// I = (I_high - I_low) / (C_high - C_low) * (C - C_low) + I_low
			raw := (bp.aqiHigh-bp.aqiLow)/(bp.cHigh-bp.cLow)*(pm-bp.cLow) + bp.aqiLow
			value := roundHalfAwayFromZero(raw)
			return &AQIResult{
				Value:     value,
				Category:  GetAQICategory(value),
				PM25Value: pm,
			}
		}
	}

	return nil
}

// math.Round rounds half away from zero, which is the rounding the EPA
// formula calls for. Named so the intent survives the one-liner.
func roundHalfAwayFromZero(v float64) int {
	return int(math.Round(v))
}

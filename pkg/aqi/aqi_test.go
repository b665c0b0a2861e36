package aqi

import (
	"math"
	"testing"
)

func fp(v float64) *float64 {
	return &v
}

func TestCalculateEPAAQIBreakpointBoundaries(t *testing.T) {
	// Both edges of every EPA band must map exactly to the band's AQI
	// endpoints.
	tests := []struct {
		pm25     float64
		expected int
	}{
		{0.0, 0},
		{12.0, 50},
		{12.1, 51},
		{35.4, 100},
		{35.5, 101},
		{55.4, 150},
		{55.5, 151},
		{150.4, 200},
		{150.5, 201},
		{250.4, 300},
		{250.5, 301},
		{500.4, 500},
	}

	for _, tt := range tests {
		result := CalculateEPAAQI(fp(tt.pm25))
		if result == nil {
			t.Fatalf("pm25=%v: expected AQI %d, got nil", tt.pm25, tt.expected)
		}
		if result.Value != tt.expected {
			t.Errorf("pm25=%v: expected AQI %d, got %d", tt.pm25, tt.expected, result.Value)
		}
		if result.PM25Value != tt.pm25 {
			t.Errorf("pm25=%v: result echoes %v", tt.pm25, result.PM25Value)
		}
	}
}

func TestCalculateEPAAQIInterpolation(t *testing.T) {
	tests := []struct {
		pm25     float64
		expected int
	}{
		{6, 25},
		{20, 68},
		{25, 78},
		{100, 174},
	}

	for _, tt := range tests {
		result := CalculateEPAAQI(fp(tt.pm25))
		if result == nil {
			t.Fatalf("pm25=%v: expected AQI %d, got nil", tt.pm25, tt.expected)
		}
		if result.Value != tt.expected {
			t.Errorf("pm25=%v: expected AQI %d, got %d", tt.pm25, tt.expected, result.Value)
		}
	}
}

func TestCalculateEPAAQINilPropagation(t *testing.T) {
	if result := CalculateEPAAQI(nil); result != nil {
		t.Errorf("nil input: expected nil, got %+v", result)
	}
	if result := CalculateEPAAQI(fp(math.NaN())); result != nil {
		t.Errorf("NaN input: expected nil, got %+v", result)
	}
	if result := CalculateEPAAQI(fp(math.Inf(1))); result != nil {
		t.Errorf("+Inf input: expected nil, got %+v", result)
	}
}

func TestCalculateEPAAQINegativeInput(t *testing.T) {
	// Negative concentrations fall through every band: AQI undefined, not
	// zero.
	if result := CalculateEPAAQI(fp(-5)); result != nil {
		t.Errorf("negative input: expected nil, got %+v", result)
	}
}

func TestCalculateEPAAQIClampAboveRange(t *testing.T) {
	result := CalculateEPAAQI(fp(600))
	if result == nil {
		t.Fatal("pm25=600: expected clamped result, got nil")
	}
	if result.Value != 500 {
		t.Errorf("pm25=600: expected AQI 500, got %d", result.Value)
	}
	if result.Category.Name != "Hazardous" {
		t.Errorf("pm25=600: expected Hazardous category, got %q", result.Category.Name)
	}
}

func TestCalculateEPAAQIBandGap(t *testing.T) {
	// The published table leaves a one-tenth-unit gap between adjacent
	// bands (12.0 vs 12.1). Concentrations inside the gap match no band.
	if result := CalculateEPAAQI(fp(12.05)); result != nil {
		t.Errorf("pm25=12.05 falls between bands: expected nil, got %+v", result)
	}
}

func TestGetAQICategory(t *testing.T) {
	tests := []struct {
		aqi      int
		expected string
		color    string
	}{
		{0, "Good", "#00E400"},
		{50, "Good", "#00E400"},
		{51, "Moderate", "#FFFF00"},
		{100, "Moderate", "#FFFF00"},
		{101, "Unhealthy for Sensitive Groups", "#FF7E00"},
		{150, "Unhealthy for Sensitive Groups", "#FF7E00"},
		{151, "Unhealthy", "#FF0000"},
		{200, "Unhealthy", "#FF0000"},
		{201, "Very Unhealthy", "#8F3F97"},
		{300, "Very Unhealthy", "#8F3F97"},
		{301, "Hazardous", "#7E0023"},
		{500, "Hazardous", "#7E0023"},
		{750, "Hazardous", "#7E0023"},
	}

	for _, tt := range tests {
		cat := GetAQICategory(tt.aqi)
		if cat.Name != tt.expected {
			t.Errorf("aqi=%d: expected category %q, got %q", tt.aqi, tt.expected, cat.Name)
		}
		if cat.Color != tt.color {
			t.Errorf("aqi=%d: expected color %q, got %q", tt.aqi, tt.color, cat.Color)
		}
	}
}

func TestCategoryRoundTripStability(t *testing.T) {
	// The category embedded in an AQI result must always equal a fresh
	// lookup on the result value: there is exactly one category mapping.
	for pm := 0.0; pm <= 520; pm += 2.5 {
		result := CalculateEPAAQI(fp(pm))
		if result == nil {
			continue // band gap
		}
		if result.Category != GetAQICategory(result.Value) {
			t.Fatalf("pm25=%v: embedded category %+v diverges from lookup on AQI %d",
				pm, result.Category, result.Value)
		}
	}
}

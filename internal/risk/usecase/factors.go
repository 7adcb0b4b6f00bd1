package usecase

import (
	"fmt"

	"rockguard-srv/internal/model"
)

// riskFactors lists human-readable concerns for channels past their
// informational thresholds. These are deliberately lower than the scoring
// thresholds: factors surface before the score bands act.
func riskFactors(reading model.SensorReading) []string {
	r := clampReading(reading)
	factors := []string{}

	if r.Vibration > 3 {
		factors = append(factors, fmt.Sprintf("High vibration levels (%.1f Hz)", r.Vibration))
	}
	if r.Moisture > 50 {
		factors = append(factors, fmt.Sprintf("Elevated moisture content (%.1f%%)", r.Moisture))
	}
	if r.SeismicActivity > 3 {
		factors = append(factors, fmt.Sprintf("Significant seismic activity (%.1f/10)", r.SeismicActivity))
	}
	if r.RockStability < 7 {
		factors = append(factors, fmt.Sprintf("Reduced rock stability (%.1f/10)", r.RockStability))
	}
	if r.Rainfall > 5 {
		factors = append(factors, fmt.Sprintf("Heavy rainfall (%.1f mm/hr)", r.Rainfall))
	}
	if r.GroundwaterLevel > 1.5 {
		factors = append(factors, fmt.Sprintf("Rising groundwater levels (%.1fm)", r.GroundwaterLevel))
	}
	if r.WeatherSeverity > 4 {
		factors = append(factors, fmt.Sprintf("Severe weather conditions (%g/10)", r.WeatherSeverity))
	}

	if len(factors) == 0 {
		return []string{"Normal sensor readings", "Stable environmental conditions"}
	}
	return factors
}

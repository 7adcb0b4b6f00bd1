package usecase

import "rockguard-srv/internal/model"

// Risk level breakpoints. The same thresholds select the recommendation text
// and the time window, so they live in one place.
const (
	scoreCritical = 70
	scoreHigh     = 50
	scoreMedium   = 25

	maxScore = 100
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampReading pins every channel to its physical bounds before scoring.
// Producers do not validate, so the scorer must be total.
func clampReading(r model.SensorReading) model.SensorReading {
	r.Vibration = clamp(r.Vibration, 0, 1e9)
	r.Moisture = clamp(r.Moisture, 0, 1e9)
	// Temperature may be legitimately negative, left as is.
	r.Pressure = clamp(r.Pressure, 0, 1e9)
	r.Rainfall = clamp(r.Rainfall, 0, 1e9)
	r.WindSpeed = clamp(r.WindSpeed, 0, 1e9)
	r.SeismicActivity = clamp(r.SeismicActivity, 0, 10)
	r.RockStability = clamp(r.RockStability, 0, 10)
	r.SlopeAngle = clamp(r.SlopeAngle, 0, 1e9)
	r.GroundwaterLevel = clamp(r.GroundwaterLevel, 0, 1e9)
	r.WeatherSeverity = clamp(r.WeatherSeverity, 0, 10)
	return r
}

// calculateRiskScore maps a reading to a deterministic score in [0,100].
// Each channel contributes at most one band; the highest exceeded threshold
// wins within a channel.
func calculateRiskScore(reading model.SensorReading) int {
	r := clampReading(reading)
	score := 0

	// Vibration risk (0-20 points)
	switch {
	case r.Vibration > 5:
		score += 20
	case r.Vibration > 3:
		score += 12
	case r.Vibration > 2:
		score += 5
	}

	// Moisture risk (0-15 points)
	switch {
	case r.Moisture > 70:
		score += 15
	case r.Moisture > 50:
		score += 8
	case r.Moisture > 40:
		score += 3
	}

	// Seismic activity risk (0-20 points)
	switch {
	case r.SeismicActivity > 6:
		score += 20
	case r.SeismicActivity > 3:
		score += 10
	case r.SeismicActivity > 2:
		score += 4
	}

	// Rock stability risk (0-15 points, inverse: lower is worse)
	switch {
	case r.RockStability < 5:
		score += 15
	case r.RockStability < 7:
		score += 8
	case r.RockStability < 8:
		score += 3
	}

	// Weather conditions risk (0-15 points)
	if r.Rainfall > 15 {
		score += 8
	}
	if r.WindSpeed > 30 {
		score += 4
	}
	if r.WeatherSeverity > 7 {
		score += 3
	}

	// Groundwater risk (0-10 points)
	switch {
	case r.GroundwaterLevel > 2.5:
		score += 10
	case r.GroundwaterLevel > 1.5:
		score += 5
	}

	// Slope angle risk (0-5 points)
	switch {
	case r.SlopeAngle > 45:
		score += 5
	case r.SlopeAngle > 35:
		score += 2
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

// riskLevelFor is a pure step function of the score.
func riskLevelFor(score int) string {
	switch {
	case score >= scoreCritical:
		return model.RiskLevelCritical
	case score >= scoreHigh:
		return model.RiskLevelHigh
	case score >= scoreMedium:
		return model.RiskLevelMedium
	default:
		return model.RiskLevelLow
	}
}

func recommendationFor(score int) string {
	switch {
	case score >= scoreCritical:
		return "IMMEDIATE EVACUATION required. Cease all operations and conduct emergency structural assessment."
	case score >= scoreHigh:
		return "Evacuate non-essential personnel. Increase monitoring frequency and prepare emergency response."
	case score >= scoreMedium:
		return "Limit personnel in area. Enhance monitoring and review safety protocols."
	default:
		return "Continue normal operations with standard monitoring procedures."
	}
}

func timeWindowFor(score int) string {
	switch {
	case score >= scoreCritical:
		return "Immediate risk (0-2 hours)"
	case score >= scoreHigh:
		return "Short-term risk (2-6 hours)"
	case score >= scoreMedium:
		return "Medium-term risk (6-24 hours)"
	default:
		return "Long-term monitoring (24+ hours)"
	}
}

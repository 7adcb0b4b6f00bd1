package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"rockguard-srv/internal/model"
)

// narrativeResult is the JSON document the generator is asked to produce.
type narrativeResult struct {
	RiskLevel       string   `json:"riskLevel"`
	Probability     float64  `json:"probability"`
	RiskFactors     []string `json:"riskFactors"`
	Recommendations string   `json:"recommendations"`
	TimeWindow      string   `json:"timeWindow"`
	Confidence      float64  `json:"confidence"`
}

// generateNarrative asks the model for a structured assessment. Any failure
// (transport, timeout, malformed output) returns an error so the caller can
// fall back to the deterministic assessment.
func (uc *implUseCase) generateNarrative(ctx context.Context, reading model.SensorReading, score int) (model.Prediction, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.config.NarrativeTimeout)
	defer cancel()

	raw, err := uc.groq.Generate(ctx, buildNarrativePrompt(reading, score))
	if err != nil {
		return model.Prediction{}, fmt.Errorf("generate: %w", err)
	}

	result, err := parseNarrative(raw)
	if err != nil {
		return model.Prediction{}, fmt.Errorf("parse: %w", err)
	}

	return model.Prediction{
		RiskLevel:       result.RiskLevel,
		Probability:     result.Probability,
		RiskFactors:     result.RiskFactors,
		Recommendations: result.Recommendations,
		TimeWindow:      result.TimeWindow,
		Confidence:      result.Confidence,
		Source:          model.PredictionSourceNarrative,
		Model:           uc.config.ModelName,
	}, nil
}

func buildNarrativePrompt(r model.SensorReading, score int) string {
	var b strings.Builder
	b.WriteString("You are an expert mining safety AI analyzing rockfall risk. Based on the sensor data below, provide a risk assessment.\n\n")
	fmt.Fprintf(&b, "Location: %s\n", r.Location)
	fmt.Fprintf(&b, "Sensor readings:\n")
	fmt.Fprintf(&b, "- Vibration: %.2f Hz (normal < 2, high > 3, critical > 5)\n", r.Vibration)
	fmt.Fprintf(&b, "- Moisture: %.2f%% (normal < 40, high > 50, critical > 70)\n", r.Moisture)
	fmt.Fprintf(&b, "- Temperature: %.2f C\n", r.Temperature)
	fmt.Fprintf(&b, "- Pressure: %.2f hPa\n", r.Pressure)
	fmt.Fprintf(&b, "- Seismic activity: %.2f/10 (normal < 2, high > 3, critical > 6)\n", r.SeismicActivity)
	fmt.Fprintf(&b, "- Rock stability: %.2f/10 (stable > 8, concerning < 7, critical < 5)\n", r.RockStability)
	fmt.Fprintf(&b, "- Rainfall: %.2f mm/hr (heavy > 15)\n", r.Rainfall)
	fmt.Fprintf(&b, "- Wind speed: %.2f km/h\n", r.WindSpeed)
	fmt.Fprintf(&b, "- Slope angle: %.2f degrees (steep > 45)\n", r.SlopeAngle)
	fmt.Fprintf(&b, "- Groundwater level: %.2f m (rising > 1.5, critical > 2.5)\n", r.GroundwaterLevel)
	fmt.Fprintf(&b, "- Weather severity: %.1f/10\n", r.WeatherSeverity)
	if r.WeatherConditions != "" {
		fmt.Fprintf(&b, "- Weather conditions: %s\n", r.WeatherConditions)
	}
	fmt.Fprintf(&b, "\nA deterministic scoring model rates this reading %d/100.\n\n", score)
	b.WriteString(`Respond with ONLY a JSON object in this exact format:
{
  "riskLevel": "Low|Medium|High|Critical",
  "probability": <number 0-100>,
  "riskFactors": ["factor1", "factor2"],
  "recommendations": "<specific actionable recommendations>",
  "timeWindow": "<predicted time window for risk>",
  "confidence": <number 0-100>
}`)
	return b.String()
}

// parseNarrative extracts and validates the JSON assessment from model output.
// Models wrap JSON in code fences or prose often enough that we scan for the
// outermost object instead of unmarshalling the raw text.
func parseNarrative(raw string) (narrativeResult, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return narrativeResult{}, fmt.Errorf("no JSON object in output")
	}

	var result narrativeResult
	if err := json.Unmarshal([]byte(raw[start:end+1]), &result); err != nil {
		return narrativeResult{}, fmt.Errorf("unmarshal: %w", err)
	}

	switch normalizeRiskLevel(result.RiskLevel) {
	case model.RiskLevelLow, model.RiskLevelMedium, model.RiskLevelHigh, model.RiskLevelCritical:
		result.RiskLevel = normalizeRiskLevel(result.RiskLevel)
	default:
		return narrativeResult{}, fmt.Errorf("invalid risk level %q", result.RiskLevel)
	}

	if result.Probability < 0 || result.Probability > 100 {
		return narrativeResult{}, fmt.Errorf("probability %v out of range", result.Probability)
	}
	if result.Confidence < 0 || result.Confidence > 100 {
		return narrativeResult{}, fmt.Errorf("confidence %v out of range", result.Confidence)
	}
	if strings.TrimSpace(result.Recommendations) == "" {
		return narrativeResult{}, fmt.Errorf("empty recommendations")
	}
	if len(result.RiskFactors) == 0 {
		return narrativeResult{}, fmt.Errorf("empty risk factors")
	}
	if strings.TrimSpace(result.TimeWindow) == "" {
		return narrativeResult{}, fmt.Errorf("empty time window")
	}

	return result, nil
}

func normalizeRiskLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "low":
		return model.RiskLevelLow
	case "medium":
		return model.RiskLevelMedium
	case "high":
		return model.RiskLevelHigh
	case "critical":
		return model.RiskLevelCritical
	default:
		return ""
	}
}

package model

// Risk levels, a step function of the risk score.
const (
	RiskLevelLow      = "Low"
	RiskLevelMedium   = "Medium"
	RiskLevelHigh     = "High"
	RiskLevelCritical = "Critical"
)

// Prediction sources.
const (
	PredictionSourceNarrative = "narrative"
	PredictionSourceFallback  = "fallback"
)

// Prediction is one immutable risk assessment for a location. Created once per
// scoring cycle and retained in a bounded newest-first history.
type Prediction struct {
	ID              string        `json:"id"`
	Location        string        `json:"location"`
	RiskLevel       string        `json:"riskLevel"`
	Probability     float64       `json:"probability"` // 0-100
	RiskFactors     []string      `json:"riskFactors"`
	Recommendations string        `json:"recommendations"`
	TimeWindow      string        `json:"timeWindow"`
	Confidence      float64       `json:"confidence"` // 0-100
	Source          string        `json:"source"`     // narrative | fallback
	Model           string        `json:"aiModel,omitempty"`
	Timestamp       string        `json:"timestamp"` // RFC3339
	SensorData      SensorReading `json:"sensorData"`
}

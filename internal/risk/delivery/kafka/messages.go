package kafka

// TelemetryMessage is one sensor reading published by field gateways to the
// telemetry topic.
type TelemetryMessage struct {
	Location          string  `json:"location"`
	Vibration         float64 `json:"vibration"`
	Moisture          float64 `json:"moisture"`
	Temperature       float64 `json:"temperature"`
	Pressure          float64 `json:"pressure"`
	Rainfall          float64 `json:"rainfall"`
	WindSpeed         float64 `json:"windSpeed"`
	SeismicActivity   float64 `json:"seismicActivity"`
	RockStability     float64 `json:"rockStability"`
	SlopeAngle        float64 `json:"slopeAngle"`
	GroundwaterLevel  float64 `json:"groundwaterLevel"`
	WeatherSeverity   float64 `json:"weatherSeverity"`
	WeatherConditions string  `json:"weatherConditions"`
	RecordedAt        string  `json:"recordedAt"`
}

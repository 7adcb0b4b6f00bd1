package model

// SensorReading is one time-stamped set of environmental measurements for a
// location. Producers do not enforce bounds; the risk scorer clamps internally.
type SensorReading struct {
	Location          string  `json:"location"`
	Vibration         float64 `json:"vibration"`         // Hz
	Moisture          float64 `json:"moisture"`          // %
	Temperature       float64 `json:"temperature"`       // °C
	Pressure          float64 `json:"pressure"`          // hPa
	Rainfall          float64 `json:"rainfall"`          // mm/hr
	WindSpeed         float64 `json:"windSpeed"`         // km/h
	SeismicActivity   float64 `json:"seismicActivity"`   // 0-10
	RockStability     float64 `json:"rockStability"`     // 0-10, higher = safer
	SlopeAngle        float64 `json:"slopeAngle"`        // degrees
	GroundwaterLevel  float64 `json:"groundwaterLevel"`  // m
	WeatherSeverity   float64 `json:"weatherSeverity"`   // 0-10
	WeatherConditions string  `json:"weatherConditions"` // free text
}

package consumer

import (
	"rockguard-srv/internal/model"
	kafkaDelivery "rockguard-srv/internal/risk/delivery/kafka"
)

// toReading maps the Kafka message DTO to the domain reading.
func toReading(m kafkaDelivery.TelemetryMessage) model.SensorReading {
	return model.SensorReading{
		Location:          m.Location,
		Vibration:         m.Vibration,
		Moisture:          m.Moisture,
		Temperature:       m.Temperature,
		Pressure:          m.Pressure,
		Rainfall:          m.Rainfall,
		WindSpeed:         m.WindSpeed,
		SeismicActivity:   m.SeismicActivity,
		RockStability:     m.RockStability,
		SlopeAngle:        m.SlopeAngle,
		GroundwaterLevel:  m.GroundwaterLevel,
		WeatherSeverity:   m.WeatherSeverity,
		WeatherConditions: m.WeatherConditions,
	}
}

package kafka

const (
	// Consumer topics
	TopicSensorTelemetry = "rockguard.sensor.telemetry"

	// Producer topics
	TopicPredictionEvents = "rockguard.prediction.events"
)

const (
	ConsumerGroupSensorTelemetry = "rockguard-risk-telemetry"
)

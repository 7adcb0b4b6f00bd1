package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"rockguard-srv/internal/alert"
	"rockguard-srv/internal/model"
	"rockguard-srv/internal/risk"
	kafkaDelivery "rockguard-srv/internal/risk/delivery/kafka"
)

type telemetryHandler struct {
	consumer *Consumer
}

func (h *telemetryHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *telemetryHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *telemetryHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleTelemetryMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "risk.delivery.kafka.consumer.ConsumeTelemetry: Failed to process telemetry message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}

// handleTelemetryMessage scores one reading and, when auto dispatch is on and
// the assessment is Critical, fires the evacuation broadcast.
func (c *Consumer) handleTelemetryMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	var telemetry kafkaDelivery.TelemetryMessage
	if err := json.Unmarshal(msg.Value, &telemetry); err != nil {
		return fmt.Errorf("unmarshal telemetry: %w", err)
	}

	o, err := c.uc.Predict(ctx, model.Scope{}, risk.PredictInput{Reading: toReading(telemetry)})
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}

	c.l.Infof(ctx, "risk.delivery.kafka.consumer.handleTelemetryMessage: prediction %s for %s is %s",
		o.Prediction.ID, o.Prediction.Location, o.Prediction.RiskLevel)

	if c.autoDispatch && o.Prediction.RiskLevel == model.RiskLevelCritical {
		c.dispatchEvacuation(ctx, o.Prediction)
	}

	return nil
}

// dispatchEvacuation is best effort: a failed broadcast must not stall the
// telemetry stream, operators still see the prediction itself.
func (c *Consumer) dispatchEvacuation(ctx context.Context, prediction model.Prediction) {
	input := alert.DispatchInput{
		Message: fmt.Sprintf("Critical rockfall risk detected at %s. %s",
			prediction.Location, prediction.Recommendations),
		AlertType:       model.AlertTypeEvacuation,
		Priority:        model.PriorityCritical,
		TargetLocations: []string{prediction.Location},
	}

	if _, err := c.alertUC.Dispatch(ctx, model.Scope{}, input); err != nil {
		c.l.Errorf(ctx, "risk.delivery.kafka.consumer.dispatchEvacuation: failed to dispatch for %s: %v", prediction.Location, err)
	}
}

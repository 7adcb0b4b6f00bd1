package consumer

import (
	"context"

	kafkaDelivery "rockguard-srv/internal/risk/delivery/kafka"
)

// ConsumeTelemetry starts consuming sensor telemetry messages.
func (c *Consumer) ConsumeTelemetry(ctx context.Context) error {
	group, err := c.createConsumerGroup(kafkaDelivery.ConsumerGroupSensorTelemetry)
	if err != nil {
		return err
	}
	c.telemetryGroup = group

	handler := &telemetryHandler{consumer: c}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{kafkaDelivery.TopicSensorTelemetry}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", kafkaDelivery.TopicSensorTelemetry)

	return nil
}

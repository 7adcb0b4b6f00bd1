package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// ConsumeWithContext joins the consumer group and handles rebalances until the
// context is cancelled.
func (c *consumerImpl) ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	for {
		if err := c.group.Consume(ctx, topics, handler); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close closes the consumer group.
func (c *consumerImpl) Close() error {
	return c.group.Close()
}

// Errors returns the consumer group error channel.
func (c *consumerImpl) Errors() <-chan error {
	return c.group.Errors()
}

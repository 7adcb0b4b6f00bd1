package consumer

import (
	"fmt"

	"rockguard-srv/config"
	"rockguard-srv/internal/alert"
	"rockguard-srv/internal/risk"
	pkgKafka "rockguard-srv/pkg/kafka"
	"rockguard-srv/pkg/log"
)

// Config holds the configuration for the risk telemetry consumer.
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     risk.UseCase
	AlertUC     alert.UseCase

	// AutoDispatch enables the automated evacuation broadcast when a
	// telemetry-driven prediction comes back Critical.
	AutoDispatch bool
}

// Consumer manages the Kafka consumer group for the risk domain.
type Consumer struct {
	l            log.Logger
	kafkaConfig  config.KafkaConfig
	uc           risk.UseCase
	alertUC      alert.UseCase
	autoDispatch bool

	telemetryGroup pkgKafka.IConsumer
}

// New creates a new risk telemetry consumer.
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if cfg.AutoDispatch && cfg.AlertUC == nil {
		return nil, fmt.Errorf("alert usecase is required when auto dispatch is enabled")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:            cfg.Logger,
		kafkaConfig:  cfg.KafkaConfig,
		uc:           cfg.UseCase,
		alertUC:      cfg.AlertUC,
		autoDispatch: cfg.AutoDispatch,
	}, nil
}

// Close closes all consumer groups.
func (c *Consumer) Close() error {
	if c.telemetryGroup != nil {
		if err := c.telemetryGroup.Close(); err != nil {
			return fmt.Errorf("failed to close telemetry group: %w", err)
		}
	}
	return nil
}

// createConsumerGroup creates a new Kafka consumer group.
func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}
	return group, nil
}

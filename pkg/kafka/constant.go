package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// ProducerTimeout is the Kafka producer request timeout.
	ProducerTimeout = 10 * time.Second
	// ProducerRetryMax is the max producer retries.
	ProducerRetryMax = 3
)

// KafkaVersion is the sarama version used.
var KafkaVersion = sarama.V2_6_0_0

package consumer

import (
	"fmt"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:             cfg.Logger,
		config:        cfg.Config,
		redisClient:   cfg.RedisClient,
		postgresDB:    cfg.PostgresDB,
		groqClient:    cfg.GroqClient,
		smsClient:     cfg.SMSClient,
		encrypter:     cfg.Encrypter,
		discord:       cfg.Discord,
		kafkaProducer: cfg.KafkaProducer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *ConsumerServer) validate() error {
	// Core Configuration
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.config == nil {
		return fmt.Errorf("config is required")
	}
	if len(srv.config.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are required")
	}

	// Infrastructure clients
	if srv.redisClient == nil {
		return fmt.Errorf("redis client is required")
	}
	if srv.postgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}
	if srv.smsClient == nil {
		return fmt.Errorf("sms client is required")
	}
	if srv.encrypter == nil {
		return fmt.Errorf("encrypter is required")
	}

	// Groq, producer and discord are optional; predictions fall back
	// deterministically without them.

	return nil
}

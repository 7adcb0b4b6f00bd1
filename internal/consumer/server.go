package consumer

import (
	"context"
	"database/sql"

	"rockguard-srv/config"
	"rockguard-srv/pkg/discord"
	"rockguard-srv/pkg/encrypter"
	"rockguard-srv/pkg/groq"
	pkgKafka "rockguard-srv/pkg/kafka"
	"rockguard-srv/pkg/log"
	"rockguard-srv/pkg/redis"
	"rockguard-srv/pkg/sms"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l      log.Logger
	config *config.Config

	// Infrastructure clients
	redisClient   redis.IRedis
	postgresDB    *sql.DB
	kafkaProducer pkgKafka.IProducer

	// External clients
	groqClient groq.IGroq
	smsClient  sms.ISMS

	// Security
	encrypter encrypter.Encrypter

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	RedisClient   redis.IRedis
	PostgresDB    *sql.DB
	KafkaProducer pkgKafka.IProducer

	// External clients
	GroqClient groq.IGroq
	SMSClient  sms.ISMS

	// Security
	Encrypter encrypter.Encrypter

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}

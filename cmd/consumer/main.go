package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"rockguard-srv/config"
	configGroq "rockguard-srv/config/groq"
	configKafka "rockguard-srv/config/kafka"
	configPostgre "rockguard-srv/config/postgre"
	configRedis "rockguard-srv/config/redis"
	configSMS "rockguard-srv/config/sms"
	"rockguard-srv/internal/consumer"
	"rockguard-srv/pkg/discord"
	"rockguard-srv/pkg/encrypter"
	pkgKafka "rockguard-srv/pkg/kafka"
	"rockguard-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting RockGuard Consumer Service...")

	// Kafka producer (for publishing prediction events, optional)
	var kafkaProducer pkgKafka.IProducer
	kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka producer not available (optional): %v", err)
		kafkaProducer = nil
	} else {
		defer configKafka.DisconnectProducer()
		logger.Info(ctx, "Kafka producer initialized")
	}

	// Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// Groq (optional)
	groqClient, err := configGroq.Connect(cfg.Groq)
	if err != nil {
		logger.Warnf(ctx, "Groq client not configured, using deterministic fallback: %v", err)
		groqClient = nil
	} else {
		logger.Info(ctx, "Groq client initialized")
	}

	// SMS gateway
	smsClient, err := configSMS.Connect(cfg.SMS)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize SMS gateway client: %v", err)
		return
	}
	logger.Info(ctx, "SMS gateway client initialized")

	// Encrypter
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Info(ctx, "Discord client initialized")
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:        logger,
		Config:        cfg,
		RedisClient:   redisClient,
		PostgresDB:    postgresDB,
		KafkaProducer: kafkaProducer,
		GroqClient:    groqClient,
		SMSClient:     smsClient,
		Encrypter:     encrypterInstance,
		Discord:       discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server stopped with error: %v", err)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rockguard-srv/config"
	configGroq "rockguard-srv/config/groq"
	configKafka "rockguard-srv/config/kafka"
	configPostgre "rockguard-srv/config/postgre"
	configRedis "rockguard-srv/config/redis"
	configSMS "rockguard-srv/config/sms"
	alertRepository "rockguard-srv/internal/alert/repository"
	alertPostgre "rockguard-srv/internal/alert/repository/postgre"
	"rockguard-srv/internal/httpserver"
	"rockguard-srv/internal/model"
	"rockguard-srv/pkg/discord"
	"rockguard-srv/pkg/encrypter"
	pkgJWT "rockguard-srv/pkg/jwt"
	pkgKafka "rockguard-srv/pkg/kafka"
	"rockguard-srv/pkg/log"
)

// @title       RockGuard Monitoring Service API
// @description Rockfall risk assessment and alert dispatch for mine sites.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	// 4. Initialize encrypter
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// 5. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 6. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 7. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 8. Initialize Kafka producer (optional, prediction events)
	var kafkaProducer pkgKafka.IProducer
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Warnf(ctx, "Kafka producer not available (optional): %v", err)
			kafkaProducer = nil
		} else {
			defer configKafka.DisconnectProducer()
			logger.Infof(ctx, "Kafka producer initialized")
		}
	}

	// 9. Initialize Groq client (optional, narrative generation)
	groqClient, err := configGroq.Connect(cfg.Groq)
	if err != nil {
		logger.Warnf(ctx, "Groq client not configured, using deterministic fallback: %v", err)
		groqClient = nil
	} else {
		logger.Infof(ctx, "Groq client initialized with model %s", cfg.Groq.Model)
	}

	// 10. Initialize SMS gateway client
	smsClient, err := configSMS.Connect(cfg.SMS)
	if err != nil {
		logger.Error(ctx, "Failed to initialize SMS gateway client: ", err)
		return
	}
	logger.Infof(ctx, "SMS gateway client initialized")

	// 11. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 12. Seed the recipient roster when empty so a fresh install can alert
	if err := seedRoster(ctx, logger, alertPostgre.New(postgresDB, logger, encrypterInstance)); err != nil {
		logger.Warnf(ctx, "Roster seeding skipped: %v", err)
	}

	// 13. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// Messaging Configuration
		KafkaProducer: kafkaProducer,

		// External clients
		GroqClient: groqClient,
		SMSClient:  smsClient,

		// Authentication & Security Configuration
		Config:       cfg,
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,
		Encrypter:    encrypterInstance,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}

// seedRoster writes the default site roster on first boot. Existing rosters
// are left untouched.
func seedRoster(ctx context.Context, logger log.Logger, repo alertRepository.Repository) error {
	existing, err := repo.ListRecipients(ctx, alertRepository.ListRecipientsOptions{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []model.Recipient{
		{ID: "1", Name: "John Miner", Contact: "+1234567890", Role: model.RoleMiner, Location: "Tunnel A"},
		{ID: "2", Name: "Sarah Supervisor", Contact: "+1234567891", Role: model.RoleAdmin, Location: "Control Room"},
		{ID: "3", Name: "Mike Worker", Contact: "+1234567892", Role: model.RoleMiner, Location: "Tunnel B"},
		{ID: "4", Name: "Lisa Manager", Contact: "+1234567893", Role: model.RoleAdmin, Location: "Safety Station"},
		{ID: "5", Name: "Tom Operator", Contact: "+1234567894", Role: model.RoleMiner, Location: "Main Shaft"},
	}

	for _, recipient := range defaults {
		if err := repo.UpsertRecipient(ctx, recipient); err != nil {
			return err
		}
	}

	logger.Infof(ctx, "Seeded recipient roster with %d default entries", len(defaults))
	return nil
}

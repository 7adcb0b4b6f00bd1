package httpserver

import (
	"database/sql"
	"errors"

	"rockguard-srv/config"
	"rockguard-srv/pkg/discord"
	"rockguard-srv/pkg/encrypter"
	"rockguard-srv/pkg/groq"
	pkgJWT "rockguard-srv/pkg/jwt"
	pkgKafka "rockguard-srv/pkg/kafka"
	"rockguard-srv/pkg/log"
	pkgRedis "rockguard-srv/pkg/redis"
	"rockguard-srv/pkg/sms"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Messaging Configuration
	kafkaProducer pkgKafka.IProducer

	// External clients
	groqClient groq.IGroq
	smsClient  sms.ISMS

	// Authentication & Security Configuration
	config       *config.Config
	jwtManager   *pkgJWT.Manager
	cookieConfig config.CookieConfig
	encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Messaging Configuration
	KafkaProducer pkgKafka.IProducer

	// External clients
	GroqClient groq.IGroq
	SMSClient  sms.ISMS

	// Authentication & Security Configuration
	Config       *config.Config
	JWTManager   *pkgJWT.Manager
	CookieConfig config.CookieConfig
	Encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Messaging Configuration
		kafkaProducer: cfg.KafkaProducer,

		// External clients
		groqClient: cfg.GroqClient,
		smsClient:  cfg.SMSClient,

		// Authentication & Security Configuration
		config:       cfg.Config,
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,
		encrypter:    cfg.Encrypter,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// Delivery transport
	if srv.smsClient == nil {
		return errors.New("smsClient is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	// Groq, Kafka producer and Discord are optional: predictions fall back
	// deterministically, events are skipped, errors only go to logs.

	return nil
}

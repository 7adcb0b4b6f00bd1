package consumer

import (
	"context"
	"fmt"
	"time"

	alertPostgre "rockguard-srv/internal/alert/repository/postgre"
	alertUsecase "rockguard-srv/internal/alert/usecase"
	riskConsumer "rockguard-srv/internal/risk/delivery/kafka/consumer"
	riskRedis "rockguard-srv/internal/risk/repository/redis"
	riskUsecase "rockguard-srv/internal/risk/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	riskConsumer *riskConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	// Risk domain: Redis-backed history, deterministic scoring + narrative
	riskRepo := riskRedis.New(srv.redisClient, srv.l, srv.config.Prediction.HistorySize)
	riskUC := riskUsecase.New(riskRepo, srv.groqClient, srv.kafkaProducer, srv.l, riskUsecase.Config{
		NarrativeTimeout: time.Duration(srv.config.Prediction.NarrativeTimeout) * time.Second,
		ModelName:        srv.config.Groq.Model,
	})

	// Alert domain: Postgres roster + broadcast log, SMS fan-out
	alertRepo := alertPostgre.New(srv.postgresDB, srv.l, srv.encrypter)
	alertUC := alertUsecase.New(alertRepo, srv.smsClient, srv.l, alertUsecase.Config{
		MaxConcurrentBatches: srv.config.SMS.MaxConcurrentBatches,
		DispatchTimeout:      time.Duration(srv.config.Alerting.DispatchTimeout) * time.Second,
	})

	riskCons, err := riskConsumer.New(riskConsumer.Config{
		Logger:       srv.l,
		KafkaConfig:  srv.config.Kafka,
		UseCase:      riskUC,
		AlertUC:      alertUC,
		AutoDispatch: srv.config.Alerting.AutoDispatch,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create risk consumer: %w", err)
	}

	srv.l.Infof(ctx, "Risk domain initialized")

	return &domainConsumers{
		riskConsumer: riskCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.riskConsumer.ConsumeTelemetry(ctx); err != nil {
		return fmt.Errorf("failed to start risk consumer: %w", err)
	}
	return nil
}

// stopConsumers closes all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if err := consumers.riskConsumer.Close(); err != nil {
		srv.l.Errorf(ctx, "Failed to close risk consumer: %v", err)
	}
}

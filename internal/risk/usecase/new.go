package usecase

import (
	"rockguard-srv/internal/risk"
	"rockguard-srv/internal/risk/repository"
	"rockguard-srv/pkg/groq"
	pkgKafka "rockguard-srv/pkg/kafka"
	"rockguard-srv/pkg/log"
	"time"
)

const (
	defaultNarrativeTimeout = 30 * time.Second
	defaultModelName        = "Groq Llama 3.1 70B"
)

// Config holds configuration for the risk usecase.
type Config struct {
	// NarrativeTimeout bounds the external narrative call; past it the
	// deterministic fallback takes over.
	NarrativeTimeout time.Duration
	// ModelName is recorded on narrative-sourced predictions.
	ModelName string
}

type implUseCase struct {
	repo     repository.PredictionRepository
	groq     groq.IGroq
	producer pkgKafka.IProducer
	l        log.Logger
	config   Config

	lastID int64 // monotonic prediction id floor, unix millis
}

// New creates a new risk UseCase implementation. The groq client and producer
// are optional; without them predictions fall back deterministically and
// events are not published.
func New(
	repo repository.PredictionRepository,
	groqClient groq.IGroq,
	producer pkgKafka.IProducer,
	l log.Logger,
	cfg Config,
) risk.UseCase {
	if cfg.NarrativeTimeout <= 0 {
		cfg.NarrativeTimeout = defaultNarrativeTimeout
	}
	if cfg.ModelName == "" {
		cfg.ModelName = defaultModelName
	}

	return &implUseCase{
		repo:     repo,
		groq:     groqClient,
		producer: producer,
		l:        l,
		config:   cfg,
	}
}

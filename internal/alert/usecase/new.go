package usecase

import (
	"time"

	"rockguard-srv/internal/alert"
	"rockguard-srv/internal/alert/repository"
	"rockguard-srv/pkg/log"
	"rockguard-srv/pkg/sms"
)

const (
	defaultMaxConcurrentBatches = 4
	defaultDispatchTimeout      = 30 * time.Second
)

// Config holds configuration for the alert usecase.
type Config struct {
	// MaxConcurrentBatches caps in-flight gateway calls during fan-out.
	MaxConcurrentBatches int
	// DispatchTimeout bounds a whole dispatch including all gateway batches.
	DispatchTimeout time.Duration
}

type implUseCase struct {
	repo   repository.Repository
	sms    sms.ISMS
	l      log.Logger
	config Config

	lastID int64 // monotonic broadcast id floor, unix millis
}

// New creates a new alert UseCase implementation.
func New(repo repository.Repository, smsClient sms.ISMS, l log.Logger, cfg Config) alert.UseCase {
	if cfg.MaxConcurrentBatches <= 0 {
		cfg.MaxConcurrentBatches = defaultMaxConcurrentBatches
	}
	if cfg.DispatchTimeout <= 0 {
		cfg.DispatchTimeout = defaultDispatchTimeout
	}

	return &implUseCase{
		repo:   repo,
		sms:    smsClient,
		l:      l,
		config: cfg,
	}
}

package redis

import (
	"rockguard-srv/internal/risk/repository"
	"rockguard-srv/pkg/log"
	pkgRedis "rockguard-srv/pkg/redis"
)

const defaultHistorySize = 5

type implRepository struct {
	client      pkgRedis.IRedis
	l           log.Logger
	historySize int64
}

// New creates a Redis-backed prediction repository. historySize bounds the
// retained history (defaults to 5, the dashboard's most-recent window).
func New(client pkgRedis.IRedis, l log.Logger, historySize int) repository.PredictionRepository {
	if historySize <= 0 {
		historySize = defaultHistorySize
	}
	return &implRepository{
		client:      client,
		l:           l,
		historySize: int64(historySize),
	}
}

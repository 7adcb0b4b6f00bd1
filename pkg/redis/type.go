package redis

import (
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// DefaultConnectTimeout is the maximum time to wait for the initial ping.
const DefaultConnectTimeout = 5 * time.Second

// redisImpl implements IRedis using go-redis.
type redisImpl struct {
	client *goredis.Client
}

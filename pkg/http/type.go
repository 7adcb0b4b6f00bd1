package http

import (
	"net/http"
	"time"
)

// ClientConfig holds timeout and retry settings for the client.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

type clientImpl struct {
	client *http.Client
	config ClientConfig
}

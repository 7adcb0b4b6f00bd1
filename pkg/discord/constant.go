package discord

import (
	"net/http"
	"time"
)

const (
	webhookBaseURL = "https://discord.com/api/webhooks"

	colorInfo    = 0x3498db
	colorSuccess = 0x2ecc71
	colorWarning = 0xf39c12
	colorError   = 0xe74c3c
)

// DefaultConfig returns default Config.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		DefaultUsername: "RockGuard Monitor",
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

package sms

import (
	"context"

	pkghttp "rockguard-srv/pkg/http"
)

// ISMS defines the interface for the SMS delivery gateway.
// Implementations are safe for concurrent use.
type ISMS interface {
	// Send delivers one message to a batch of recipients. A returned error
	// means the gateway call itself failed; per-recipient failures are
	// reported inside SendResponse.Results.
	Send(ctx context.Context, req SendRequest) (SendResponse, error)
	// MaxBatchSize returns the maximum number of recipients per Send call.
	MaxBatchSize() int
}

// New creates a new SMS gateway client. Returns the interface.
func New(cfg SMSConfig) (ISMS, error) {
	if cfg.GatewayURL == "" {
		return nil, ErrGatewayURLRequired
	}
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = DefaultMaxBatchSize
	}
	return &smsImpl{
		gatewayURL:   cfg.GatewayURL,
		apiKey:       cfg.APIKey,
		maxBatchSize: cfg.MaxBatchSize,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   DefaultTimeout,
			Retries:   DefaultRetries,
			RetryWait: DefaultRetryWait,
		}),
	}, nil
}

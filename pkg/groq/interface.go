package groq

import (
	"context"
	"fmt"
	"time"

	pkghttp "rockguard-srv/pkg/http"
)

// IGroq defines the interface for Groq text generation.
// Implementations are safe for concurrent use.
type IGroq interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewGroq creates a new Groq client. Model defaults to DefaultModel if empty.
// APIKey must be set; Generate will return an error if it is empty.
func NewGroq(cfg GroqConfig) (IGroq, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq: API key is required")
	}
	return &groqImpl{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   60 * time.Second,
			Retries:   3,
			RetryWait: 1 * time.Second,
		}),
	}, nil
}

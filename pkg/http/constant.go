package http

import "time"

const (
	// DefaultTimeout bounds a single request including retries' reads.
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is how many times a failed request is retried.
	DefaultRetries = 3
	// DefaultRetryWait is the pause between retry attempts.
	DefaultRetryWait = 1 * time.Second
)

// DefaultConfig returns a ClientConfig with the package defaults.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	}
}

package sms

import "time"

const (
	// DefaultTimeout is the default gateway request timeout.
	DefaultTimeout = 15 * time.Second
	// DefaultRetries is the default number of gateway retries.
	DefaultRetries = 2
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 500 * time.Millisecond
	// DefaultMaxBatchSize is the default number of recipients per gateway call.
	DefaultMaxBatchSize = 50
)

// Delivery statuses reported per recipient by the gateway.
const (
	StatusSent    = "sent"
	StatusFailed  = "failed"
	StatusPending = "pending"
)

package alert

import "errors"

var (
	ErrMessageRequired      = errors.New("alert message is required")
	ErrInvalidAlertType     = errors.New("invalid alert type")
	ErrInvalidPriority      = errors.New("invalid priority")
	ErrNoRecipients         = errors.New("no recipients match the targeting filters")
	ErrDirectoryUnavailable = errors.New("recipient directory is unavailable")
	ErrTransportUnavailable = errors.New("delivery transport is unavailable")
	ErrBroadcastLogFailed   = errors.New("broadcast log is unavailable")
)

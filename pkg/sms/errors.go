package sms

import "errors"

var (
	ErrGatewayURLRequired = errors.New("sms: gateway URL is required")
	ErrNoRecipients       = errors.New("sms: at least one recipient is required")
)

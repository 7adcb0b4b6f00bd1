package sms

import pkghttp "rockguard-srv/pkg/http"

// SMSConfig holds the configuration for the SMS gateway client.
type SMSConfig struct {
	GatewayURL   string
	APIKey       string
	MaxBatchSize int
}

// smsImpl implements ISMS against an HTTP SMS gateway.
type smsImpl struct {
	gatewayURL   string
	apiKey       string
	maxBatchSize int
	httpClient   pkghttp.IClient
}

// SendRequest is the gateway request payload.
type SendRequest struct {
	Recipients []string `json:"to"`
	Message    string   `json:"message"`
	Priority   string   `json:"priority"`
	AlertType  string   `json:"alertType"`
}

// DeliveryResult is the per-recipient outcome reported by the gateway.
type DeliveryResult struct {
	Phone     string  `json:"phone"`
	Status    string  `json:"status"`
	MessageID string  `json:"messageId"`
	Timestamp string  `json:"timestamp"`
	Cost      float64 `json:"cost"`
}

// SendResponse is the gateway response payload.
type SendResponse struct {
	Success   bool             `json:"success"`
	Results   []DeliveryResult `json:"results"`
	TotalSent int              `json:"totalSent"`
	Timestamp string           `json:"timestamp"`
}

package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Send posts the message to the gateway and parses the per-recipient results.
func (s *smsImpl) Send(ctx context.Context, req SendRequest) (SendResponse, error) {
	if len(req.Recipients) == 0 {
		return SendResponse{}, ErrNoRecipients
	}

	headers := map[string]string{}
	if s.apiKey != "" {
		headers["Authorization"] = "Bearer " + s.apiKey
	}

	body, statusCode, err := s.httpClient.Post(ctx, s.gatewayURL, req, headers)
	if err != nil {
		return SendResponse{}, fmt.Errorf("sms: gateway call failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return SendResponse{}, fmt.Errorf("sms: gateway returned status %d, body: %s", statusCode, string(body))
	}

	var resp SendResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return SendResponse{}, fmt.Errorf("sms: failed to unmarshal gateway response: %w", err)
	}

	return resp, nil
}

// MaxBatchSize returns the configured batch limit.
func (s *smsImpl) MaxBatchSize() int {
	return s.maxBatchSize
}

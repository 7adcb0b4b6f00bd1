package groq

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Generate generates content based on the prompt.
func (g *groqImpl) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("groq: API key is required")
	}

	req := Request{
		Model: g.model,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
		Temperature: DefaultTemperature,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + g.apiKey,
	}

	body, statusCode, err := g.httpClient.Post(ctx, BaseURL, req, headers)
	if err != nil {
		return "", fmt.Errorf("failed to call Groq API: %w", err)
	}

	if statusCode != http.StatusOK {
		return "", fmt.Errorf("Groq API returned status: %d, body: %s", statusCode, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal Groq response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	var b strings.Builder
	for _, choice := range resp.Choices {
		b.WriteString(choice.Message.Content)
	}
	return b.String(), nil
}

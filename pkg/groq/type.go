package groq

import pkghttp "rockguard-srv/pkg/http"

// GroqConfig holds the configuration for the Groq client.
type GroqConfig struct {
	APIKey string
	Model  string
}

// groqImpl implements IGroq using the Groq chat completions API.
type groqImpl struct {
	apiKey     string
	model      string
	httpClient pkghttp.IClient
}

// Request defines the request body for the chat completions API.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
}

// Message represents a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response defines the response body from the chat completions API.
type Response struct {
	ID      string   `json:"id"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice represents a generated completion choice.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage represents token usage.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

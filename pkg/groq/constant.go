package groq

const (
	// BaseURL is the Groq OpenAI-compatible chat completions endpoint.
	BaseURL = "https://api.groq.com/openai/v1/chat/completions"
	// DefaultModel is used when no model is configured.
	DefaultModel = "llama-3.1-70b-versatile"
	// DefaultTemperature keeps risk assessments consistent between calls.
	DefaultTemperature = 0.2
)

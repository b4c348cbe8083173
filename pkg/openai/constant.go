package openai

const (
	defaultBaseURL = "https://api.openai.com/v1"

	// The Assistants API is gated behind a beta header.
	betaHeaderKey   = "OpenAI-Beta"
	betaHeaderValue = "assistants=v2"
)

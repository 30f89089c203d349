package llm

import (
	"log"
	"os"
)

const (
	// EnvEchodMode is the environment variable name for mode selection.
	EnvEchodMode = "ECHOD_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewClient creates an LLM client based on the ECHOD_MODE environment
// variable. If ECHOD_MODE=MOCK or no API key is configured, returns a
// MockClient; otherwise returns a real OpenAI client.
func NewClient(apiKey, model string) Client {
	if os.Getenv(EnvEchodMode) == ModeMock {
		log.Println("ECHOD_MODE=MOCK detected, using mock LLM client")
		return NewMockClient()
	}
	if apiKey == "" {
		log.Println("WARN: OPENAI_API_KEY not set, using mock LLM client")
		return NewMockClient()
	}
	return NewOpenAIClient(apiKey, model)
}

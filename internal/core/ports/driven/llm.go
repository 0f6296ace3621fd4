package driven

import "context"

// LLMService provides completion model operations.
// This is an optional service - when nil, question answering is
// disabled and insight generation falls back to the heuristic parser.
//
// Implementations may include:
//   - Ollama (local models)
//   - OpenAI or compatible APIs (Groq exposes the same surface)
//   - Google Gemini
//
// Providers may be rate-limited or fail transiently; callers surface
// the failure rather than retrying silently.
type LLMService interface {
	// Generate produces a text completion from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}

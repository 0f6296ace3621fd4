package domain

// AIProvider identifies an AI service provider.
type AIProvider string

// Supported providers.
const (
	// ProviderOllama is a local inference server (no API key).
	ProviderOllama AIProvider = "ollama"

	// ProviderOpenAI is the OpenAI API or a compatible endpoint
	// (Groq exposes the same chat-completions surface).
	ProviderOpenAI AIProvider = "openai"

	// ProviderGemini is the Google Gemini API.
	ProviderGemini AIProvider = "gemini"
)

// IsValid returns true if the provider is a known value.
func (p AIProvider) IsValid() bool {
	switch p {
	case ProviderOllama, ProviderOpenAI, ProviderGemini:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if the provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == ProviderOpenAI || p == ProviderGemini
}

// EmbeddingSettings holds embedding provider configuration.
type EmbeddingSettings struct {
	// Provider is the embedding service provider.
	Provider AIProvider

	// Model is the embedding model name.
	Model string

	// BaseURL is the API endpoint (for Ollama or compatible APIs).
	BaseURL string

	// APIKey is the API key (for OpenAI).
	APIKey string
}

// IsConfigured returns true if the embedding provider is set up.
func (e EmbeddingSettings) IsConfigured() bool {
	if !e.Provider.IsValid() {
		return false
	}
	if e.Provider.RequiresAPIKey() && e.APIKey == "" {
		return false
	}
	return true
}

// LLMSettings holds completion provider configuration.
type LLMSettings struct {
	// Provider is the completion service provider.
	Provider AIProvider

	// Model is the model name.
	Model string

	// BaseURL is the API endpoint (for Ollama or compatible APIs).
	BaseURL string

	// APIKey is the API key (for OpenAI/Gemini).
	APIKey string
}

// IsConfigured returns true if the completion provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// ChunkingSettings holds the word-window chunking configuration.
type ChunkingSettings struct {
	// WindowSize is the number of words per chunk.
	WindowSize int

	// Overlap is the number of words shared between adjacent chunks.
	// Must be strictly smaller than WindowSize.
	Overlap int
}

// DefaultChunking is the chunking configuration used when none is set.
var DefaultChunking = ChunkingSettings{
	WindowSize: 500,
	Overlap:    100,
}

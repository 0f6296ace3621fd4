package file

import (
	"os"

	"github.com/docintel-labs/docintel/internal/core/domain"
	"github.com/docintel-labs/docintel/internal/core/ports/driven"
)

// Configuration keys.
const (
	KeyEmbeddingProvider = "ai.embedding.provider"
	KeyEmbeddingModel    = "ai.embedding.model"
	KeyEmbeddingBaseURL  = "ai.embedding.base_url"

	KeyLLMProvider = "ai.llm.provider"
	KeyLLMModel    = "ai.llm.model"
	KeyLLMBaseURL  = "ai.llm.base_url"

	KeyChunkWindowSize = "chunking.window_size"
	KeyChunkOverlap    = "chunking.overlap"
)

// Environment variables consulted for API keys. Keys live in the
// environment rather than the config file so they stay out of
// plain-text TOML.
const (
	EnvOpenAIKey = "OPENAI_API_KEY"
	EnvGroqKey   = "GROQ_API_KEY"
	EnvGeminiKey = "GEMINI_API_KEY"
)

// EmbeddingSettings resolves embedding configuration from the store
// and environment. An unset provider defaults to ollama so a fresh
// install works against a local server without any configuration.
func EmbeddingSettings(store driven.ConfigStore) *domain.EmbeddingSettings {
	provider := domain.AIProvider(store.GetString(KeyEmbeddingProvider))
	if provider == "" {
		provider = domain.ProviderOllama
	}

	return &domain.EmbeddingSettings{
		Provider: provider,
		Model:    store.GetString(KeyEmbeddingModel),
		BaseURL:  store.GetString(KeyEmbeddingBaseURL),
		APIKey:   apiKeyFor(provider),
	}
}

// LLMSettings resolves completion configuration from the store and
// environment.
func LLMSettings(store driven.ConfigStore) *domain.LLMSettings {
	provider := domain.AIProvider(store.GetString(KeyLLMProvider))
	if provider == "" {
		provider = domain.ProviderOllama
	}

	return &domain.LLMSettings{
		Provider: provider,
		Model:    store.GetString(KeyLLMModel),
		BaseURL:  store.GetString(KeyLLMBaseURL),
		APIKey:   apiKeyFor(provider),
	}
}

// ChunkingSettings resolves chunking configuration, falling back to
// the defaults for unset keys.
func ChunkingSettings(store driven.ConfigStore) domain.ChunkingSettings {
	settings := domain.DefaultChunking
	if v := store.GetInt(KeyChunkWindowSize); v > 0 {
		settings.WindowSize = v
	}
	if v := store.GetInt(KeyChunkOverlap); v > 0 {
		settings.Overlap = v
	}
	return settings
}

// apiKeyFor returns the API key for a provider from the environment.
// For openai-compatible endpoints, GROQ_API_KEY is used when set and
// OPENAI_API_KEY is absent.
func apiKeyFor(provider domain.AIProvider) string {
	switch provider {
	case domain.ProviderOpenAI:
		if key := os.Getenv(EnvOpenAIKey); key != "" {
			return key
		}
		return os.Getenv(EnvGroqKey)
	case domain.ProviderGemini:
		return os.Getenv(EnvGeminiKey)
	default:
		return ""
	}
}

package services

import (
	"context"
	"fmt"

	"github.com/docintel-labs/docintel/internal/core/domain"
	"github.com/docintel-labs/docintel/internal/core/ports/driven"
)

// mockExtractor is a test double for driven.TextExtractor.
type mockExtractor struct {
	text  string
	err   error
	paths []string
}

func (m *mockExtractor) Extract(_ context.Context, path string) (string, error) {
	m.paths = append(m.paths, path)
	return m.text, m.err
}

// mockEmbeddingService is a test double for driven.EmbeddingService.
type mockEmbeddingService struct {
	embedErr   error
	batchErr   error
	batchShort bool // return one embedding fewer than requested
	embedCalls int
	batchCalls int
}

func (m *mockEmbeddingService) Embed(_ context.Context, _ string) ([]float32, error) {
	m.embedCalls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	return []float32{1, 0}, nil
}

func (m *mockEmbeddingService) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.batchCalls++
	if m.batchErr != nil {
		return nil, m.batchErr
	}
	n := len(texts)
	if m.batchShort && n > 0 {
		n--
	}
	embeddings := make([][]float32, n)
	for i := range embeddings {
		embeddings[i] = []float32{float32(i), 1}
	}
	return embeddings, nil
}

func (m *mockEmbeddingService) Dimensions() int    { return 2 }
func (m *mockEmbeddingService) ModelName() string  { return "mock-embed" }
func (m *mockEmbeddingService) Ping(_ context.Context) error { return nil }
func (m *mockEmbeddingService) Close() error       { return nil }

// mockLLMService is a test double for driven.LLMService.
type mockLLMService struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (m *mockLLMService) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.calls++
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockLLMService) ModelName() string  { return "mock-llm" }
func (m *mockLLMService) Ping(_ context.Context) error { return nil }
func (m *mockLLMService) Close() error       { return nil }

// mockPromptStore serves fixed templates without touching disk.
type mockPromptStore struct{}

func (m *mockPromptStore) Load(name string) (string, error) {
	switch name {
	case driven.PromptAnswer:
		return "Context:\n%s\n\nQuestion:\n%s", nil
	case driven.PromptInsight:
		return "DOCUMENT:\n%s", nil
	default:
		return "", fmt.Errorf("unknown prompt %q", name)
	}
}

func (m *mockPromptStore) Reload()     {}
func (m *mockPromptStore) Dir() string { return "" }

// failingInsightStore always fails saves, for best-effort checks.
type failingInsightStore struct {
	err error
}

var _ driven.InsightStore = (*failingInsightStore)(nil)

func (s *failingInsightStore) SaveInsight(_ context.Context, _ *domain.Insight) error {
	return s.err
}

func (s *failingInsightStore) GetInsight(_ context.Context, _ string) (*domain.Insight, error) {
	return nil, domain.ErrNotFound
}

func (s *failingInsightStore) DeleteInsight(_ context.Context, _ string) error {
	return nil
}

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/docintel-labs/docintel/internal/core/domain"
	"github.com/docintel-labs/docintel/internal/core/ports/driven"
	"github.com/docintel-labs/docintel/internal/core/ports/driving"
	"github.com/docintel-labs/docintel/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

const (
	// DefaultTopK is the number of chunks retrieved when the caller
	// does not specify one.
	DefaultTopK = 5

	// NoAnswerMessage is returned when retrieval finds nothing. The
	// completion model is not called in that case.
	NoAnswerMessage = "No relevant information found in the indexed documents."

	// generateTimeout bounds a single completion call.
	generateTimeout = 90 * time.Second
)

// AnswerService answers questions grounded on retrieved chunks.
type AnswerService struct {
	embeddingService driven.EmbeddingService
	vectorIndex      driven.VectorIndex
	llmService       driven.LLMService
	promptStore      driven.PromptStore
}

// NewAnswerService creates a new answer service.
func NewAnswerService(
	embeddingService driven.EmbeddingService,
	vectorIndex driven.VectorIndex,
	llmService driven.LLMService,
	promptStore driven.PromptStore,
) *AnswerService {
	return &AnswerService{
		embeddingService: embeddingService,
		vectorIndex:      vectorIndex,
		llmService:       llmService,
		promptStore:      promptStore,
	}
}

// Answer embeds the question, retrieves the nearest chunks and
// conditions the completion model on them. Retrieval order is final;
// there is no re-ranking.
func (s *AnswerService) Answer(ctx context.Context, question string, topK int) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	logger.Section("Answer")
	logger.Debug("Question: %q (topK=%d)", question, topK)

	if s.llmService == nil {
		return "", fmt.Errorf("%w: no completion provider configured", domain.ErrLLMUnavailable)
	}

	embedding, err := s.embeddingService.Embed(ctx, question)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrEmbeddingFailed, err)
	}

	contexts, err := s.vectorIndex.Query(ctx, embedding, topK)
	if err != nil {
		return "", fmt.Errorf("querying index: %w", err)
	}
	logger.Debug("Retrieved %d context chunks", len(contexts))

	if len(contexts) == 0 {
		return NoAnswerMessage, nil
	}

	template, err := s.promptStore.Load(driven.PromptAnswer)
	if err != nil {
		return "", fmt.Errorf("loading answer prompt: %w", err)
	}

	contextBlock := strings.Join(contexts, "\n\n")
	prompt := fmt.Sprintf(template, contextBlock, question)

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	answer, err := s.llmService.Generate(genCtx, prompt, driven.GenerateOptions{})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrLLMUnavailable, err)
	}

	return strings.TrimSpace(answer), nil
}

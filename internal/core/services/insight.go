package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/docintel-labs/docintel/internal/core/domain"
	"github.com/docintel-labs/docintel/internal/core/ports/driven"
	"github.com/docintel-labs/docintel/internal/core/ports/driving"
	"github.com/docintel-labs/docintel/internal/insights"
	"github.com/docintel-labs/docintel/internal/logger"
)

// Ensure InsightService implements the interface.
var _ driving.InsightService = (*InsightService)(nil)

const (
	// insightInputLimit caps how much document text is sent to the
	// model.
	insightInputLimit = 4000

	// insightFallbackLength caps the summary taken from an unparseable
	// model response.
	insightFallbackLength = 500

	// insightTemperature keeps extraction output stable across runs.
	insightTemperature = 0.2
)

// llmInsight mirrors the strict-JSON shape the insight prompt asks for.
type llmInsight struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
	Entities  []string `json:"entities"`
}

// InsightService generates and serves per-document insight records.
//
// Generation prefers the completion model when one is configured and
// falls back to the deterministic heuristic parser otherwise, or when
// the model call fails.
type InsightService struct {
	insightStore driven.InsightStore
	llmService   driven.LLMService
	promptStore  driven.PromptStore
}

// NewInsightService creates a new insight service.
// The llmService parameter is optional (can be nil).
func NewInsightService(
	insightStore driven.InsightStore,
	llmService driven.LLMService,
	promptStore driven.PromptStore,
) *InsightService {
	return &InsightService{
		insightStore: insightStore,
		llmService:   llmService,
		promptStore:  promptStore,
	}
}

// Get returns the insight record for a document.
func (s *InsightService) Get(ctx context.Context, documentID string) (*domain.Insight, error) {
	if documentID == "" {
		return nil, fmt.Errorf("%w: empty document ID", domain.ErrInvalidInput)
	}
	return s.insightStore.GetInsight(ctx, documentID)
}

// Generate builds the insight record for a document from its raw text
// and persists it, replacing any previous record.
func (s *InsightService) Generate(ctx context.Context, documentID, rawText string) (*domain.Insight, error) {
	if documentID == "" {
		return nil, fmt.Errorf("%w: empty document ID", domain.ErrInvalidInput)
	}

	var insight *domain.Insight
	if s.llmService != nil {
		var err error
		insight, err = s.generateLLM(ctx, documentID, rawText)
		if err != nil {
			logger.Warn("LLM insight extraction failed, using heuristics: %v", err)
			insight = nil
		}
	}
	if insight == nil {
		insight = insights.Parse(documentID, rawText)
	}

	insight.GeneratedAt = time.Now().UTC()

	if err := s.insightStore.SaveInsight(ctx, insight); err != nil {
		return nil, fmt.Errorf("saving insight: %w", err)
	}
	return insight, nil
}

// generateLLM asks the completion model for strict-JSON insights.
// A response that is not valid JSON degrades to a summary-only record
// rather than an error.
func (s *InsightService) generateLLM(ctx context.Context, documentID, rawText string) (*domain.Insight, error) {
	template, err := s.promptStore.Load(driven.PromptInsight)
	if err != nil {
		return nil, fmt.Errorf("loading insight prompt: %w", err)
	}

	prompt := fmt.Sprintf(template, truncateRunes(rawText, insightInputLimit))

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	raw, err := s.llmService.Generate(genCtx, prompt, driven.GenerateOptions{
		Temperature: insightTemperature,
	})
	if err != nil {
		return nil, err
	}

	insight := &domain.Insight{DocumentID: documentID}

	var parsed llmInsight
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		logger.Debug("Insight response was not valid JSON, keeping raw summary")
		insight.Summary = truncateRunes(raw, insightFallbackLength)
	} else {
		insight.Summary = parsed.Summary
		insight.KeyPoints = parsed.KeyPoints
		insight.Entities = parsed.Entities
	}

	insight.Sanitise()
	return insight, nil
}

// truncateRunes shortens s to at most limit runes.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

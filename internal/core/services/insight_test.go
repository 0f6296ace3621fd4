package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docintel-labs/docintel/internal/adapters/driven/storage/memory"
	"github.com/docintel-labs/docintel/internal/core/domain"
)

func TestInsightGet_EmptyID(t *testing.T) {
	svc := NewInsightService(memory.NewInsightStore(), nil, &mockPromptStore{})

	_, err := svc.Get(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInsightGet_NotFound(t *testing.T) {
	svc := NewInsightService(memory.NewInsightStore(), nil, &mockPromptStore{})

	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInsightGenerate_HeuristicWithoutLLM(t *testing.T) {
	store := memory.NewInsightStore()
	svc := NewInsightService(store, nil, &mockPromptStore{})
	ctx := context.Background()

	text := "Acme Research published a deep analysis of network throughput this quarter. " +
		"The results show sustained gains across every tested configuration in production."

	insight, err := svc.Generate(ctx, "doc-1", text)

	require.NoError(t, err)
	assert.Equal(t, "doc-1", insight.DocumentID)
	assert.NotEmpty(t, insight.Summary)
	assert.False(t, insight.GeneratedAt.IsZero())

	// Persisted and retrievable.
	stored, err := svc.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, insight.Summary, stored.Summary)
}

func TestInsightGenerate_LLMStrictJSON(t *testing.T) {
	llm := &mockLLMService{response: `{
		"summary": "The document covers throughput results.",
		"key_points": ["throughput improved across all configurations tested"],
		"entities": ["Acme", "Throughput"]
	}`}
	svc := NewInsightService(memory.NewInsightStore(), llm, &mockPromptStore{})

	insight, err := svc.Generate(context.Background(), "doc-1", "some document text")

	require.NoError(t, err)
	assert.Equal(t, "The document covers throughput results.", insight.Summary)
	assert.Equal(t, []string{"throughput improved across all configurations tested"}, insight.KeyPoints)
	assert.Equal(t, []string{"Acme", "Throughput"}, insight.Entities)
	assert.Equal(t, 1, llm.calls)
}

func TestInsightGenerate_LLMOutputIsSanitised(t *testing.T) {
	// Eight key points and an over-long summary must be trimmed to the
	// record bounds.
	points := make([]string, 8)
	for i := range points {
		points[i] = `"point long enough to clear the minimum key point length ` +
			string(rune('a'+i)) + `"`
	}
	response := `{"summary": "` + strings.Repeat("s", 900) + `",
		"key_points": [` + strings.Join(points, ",") + `],
		"entities": []}`

	llm := &mockLLMService{response: response}
	svc := NewInsightService(memory.NewInsightStore(), llm, &mockPromptStore{})

	insight, err := svc.Generate(context.Background(), "doc-1", "text")

	require.NoError(t, err)
	assert.Len(t, insight.Summary, domain.MaxSummaryLength)
	assert.Len(t, insight.KeyPoints, domain.MaxKeyPoints)
}

func TestInsightGenerate_UnparseableResponseDegrades(t *testing.T) {
	raw := "Here are your insights: " + strings.Repeat("x", 600)
	llm := &mockLLMService{response: raw}
	svc := NewInsightService(memory.NewInsightStore(), llm, &mockPromptStore{})

	insight, err := svc.Generate(context.Background(), "doc-1", "text")

	require.NoError(t, err)
	assert.Equal(t, truncateRunes(raw, insightFallbackLength), insight.Summary)
	assert.Empty(t, insight.KeyPoints)
	assert.Empty(t, insight.Entities)
}

func TestInsightGenerate_LLMErrorFallsBackToHeuristic(t *testing.T) {
	llm := &mockLLMService{err: errors.New("unavailable")}
	svc := NewInsightService(memory.NewInsightStore(), llm, &mockPromptStore{})

	text := "Quantum Labs announced a new compiler. The build pipeline now " +
		"finishes in half the time it previously needed on identical hardware."

	insight, err := svc.Generate(context.Background(), "doc-1", text)

	require.NoError(t, err)
	assert.Equal(t, 1, llm.calls)
	assert.NotEmpty(t, insight.Summary)
}

func TestInsightGenerate_InputTruncatedForModel(t *testing.T) {
	marker := "NEVERSENT"
	text := strings.Repeat("a", insightInputLimit) + marker

	llm := &mockLLMService{response: `{"summary":"ok","key_points":[],"entities":[]}`}
	svc := NewInsightService(memory.NewInsightStore(), llm, &mockPromptStore{})

	_, err := svc.Generate(context.Background(), "doc-1", text)

	require.NoError(t, err)
	require.Len(t, llm.prompts, 1)
	assert.NotContains(t, llm.prompts[0], marker)
}

func TestInsightGenerate_EmptyDocumentID(t *testing.T) {
	svc := NewInsightService(memory.NewInsightStore(), nil, &mockPromptStore{})

	_, err := svc.Generate(context.Background(), "", "text")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 10))
	assert.Equal(t, "ab", truncateRunes("abcd", 2))
	assert.Equal(t, "hél", truncateRunes("héllo", 3))
	assert.Equal(t, "", truncateRunes("", 5))
}

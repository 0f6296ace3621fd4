package memory

import (
	"context"
	"sync"

	"github.com/docintel-labs/docintel/internal/core/domain"
	"github.com/docintel-labs/docintel/internal/core/ports/driven"
)

// Ensure InsightStore implements the interface.
var _ driven.InsightStore = (*InsightStore)(nil)

// InsightStore is an in-memory implementation of driven.InsightStore.
type InsightStore struct {
	mu       sync.RWMutex
	insights map[string]domain.Insight
}

// NewInsightStore creates a new in-memory insight store.
func NewInsightStore() *InsightStore {
	return &InsightStore{
		insights: make(map[string]domain.Insight),
	}
}

// SaveInsight stores or replaces the insight for a document.
func (s *InsightStore) SaveInsight(_ context.Context, insight *domain.Insight) error {
	if insight.DocumentID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insights[insight.DocumentID] = *insight
	return nil
}

// GetInsight retrieves the insight for a document.
func (s *InsightStore) GetInsight(_ context.Context, documentID string) (*domain.Insight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	insight, ok := s.insights[documentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &insight, nil
}

// DeleteInsight removes the insight for a document. Deleting a missing
// record is a no-op.
func (s *InsightStore) DeleteInsight(_ context.Context, documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.insights, documentID)
	return nil
}

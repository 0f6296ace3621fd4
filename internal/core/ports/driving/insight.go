package driving

import (
	"context"

	"github.com/docintel-labs/docintel/internal/core/domain"
)

// InsightService exposes per-document insight records.
type InsightService interface {
	// Get returns the insight record for a document.
	// Returns domain.ErrNotFound when no record exists.
	Get(ctx context.Context, documentID string) (*domain.Insight, error)
}

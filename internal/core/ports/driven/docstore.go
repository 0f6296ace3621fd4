package driven

import (
	"context"

	"github.com/docintel-labs/docintel/internal/core/domain"
)

// DocumentStore persists documents.
// Backed by SQLite for durable storage, or an in-memory map for tests.
type DocumentStore interface {
	// SaveDocument stores or updates a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	// Returns domain.ErrNotFound if it does not exist.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns all documents, newest first.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// DeleteDocument removes a document. Deleting a document that does
	// not exist is a no-op.
	DeleteDocument(ctx context.Context, id string) error
}

// InsightStore persists insight records, one per document.
// A re-ingested document replaces its record wholesale.
type InsightStore interface {
	// SaveInsight stores or replaces the insight for a document.
	SaveInsight(ctx context.Context, insight *domain.Insight) error

	// GetInsight retrieves the insight for a document.
	// Returns domain.ErrNotFound if no record exists.
	GetInsight(ctx context.Context, documentID string) (*domain.Insight, error)

	// DeleteInsight removes the insight for a document. Deleting a
	// missing record is a no-op.
	DeleteInsight(ctx context.Context, documentID string) error
}

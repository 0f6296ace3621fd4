package driving

import (
	"context"

	"github.com/docintel-labs/docintel/internal/core/domain"
)

// DocumentService manages the ingested document catalogue.
type DocumentService interface {
	// List returns all ingested documents, newest first.
	List(ctx context.Context) ([]domain.Document, error)

	// Get retrieves a document by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// Delete removes a document and its insight record. The vector
	// index is append-only, so already indexed chunks are untouched.
	Delete(ctx context.Context, documentID string) error
}

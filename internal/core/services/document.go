package services

import (
	"context"
	"fmt"

	"github.com/docintel-labs/docintel/internal/core/domain"
	"github.com/docintel-labs/docintel/internal/core/ports/driven"
	"github.com/docintel-labs/docintel/internal/core/ports/driving"
	"github.com/docintel-labs/docintel/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages the ingested document catalogue.
type DocumentService struct {
	docStore     driven.DocumentStore
	insightStore driven.InsightStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(docStore driven.DocumentStore, insightStore driven.InsightStore) *DocumentService {
	return &DocumentService{
		docStore:     docStore,
		insightStore: insightStore,
	}
}

// List returns all ingested documents, newest first.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.docStore.ListDocuments(ctx)
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	if documentID == "" {
		return nil, fmt.Errorf("%w: empty document ID", domain.ErrInvalidInput)
	}
	return s.docStore.GetDocument(ctx, documentID)
}

// Delete removes a document. A missing document is a no-op, matching
// the store semantics. The insight record goes with it when the
// backing store does not cascade on its own.
func (s *DocumentService) Delete(ctx context.Context, documentID string) error {
	if documentID == "" {
		return fmt.Errorf("%w: empty document ID", domain.ErrInvalidInput)
	}

	if err := s.docStore.DeleteDocument(ctx, documentID); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}

	// The SQLite store cascades this on its own; the memory store needs
	// the explicit delete. Either way it is a no-op when nothing exists.
	if s.insightStore != nil {
		if err := s.insightStore.DeleteInsight(ctx, documentID); err != nil {
			logger.Warn("Deleting insight for %s failed: %v", documentID, err)
		}
	}

	logger.Info("Deleted document %s", documentID)
	return nil
}

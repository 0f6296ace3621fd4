package driving

import (
	"context"

	"github.com/docintel-labs/docintel/internal/core/domain"
)

// IngestService turns a document file into indexed, queryable chunks.
type IngestService interface {
	// Ingest extracts, chunks, embeds and indexes the file at path.
	// On success the returned document records the chunk count.
	//
	// Extraction, chunking, embedding and index failures abort the
	// ingestion; insight generation is best-effort and never does.
	Ingest(ctx context.Context, path string) (*domain.Document, error)
}

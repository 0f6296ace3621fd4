package driven

import "context"

// VectorIndex stores chunk embeddings and supports nearest-neighbour
// retrieval. The similarity metric is cosine, fixed across all calls.
//
// Writers are append-only: entries are never mutated in place, and a
// duplicate ID is an explicit error rather than a silent overwrite.
// The index survives process restarts when backed by durable storage.
type VectorIndex interface {
	// Add appends vectors with parallel-array semantics. ids,
	// embeddings, documents and metadatas must have equal lengths
	// (domain.ErrLengthMismatch otherwise). An ID already present in
	// the index fails the whole call with domain.ErrDuplicateID before
	// anything is written.
	Add(ctx context.Context, ids []string, embeddings [][]float32, documents []string, metadatas []map[string]any) error

	// Query returns the stored document texts whose embeddings are
	// nearest to embedding, nearest first. At most topK results;
	// fewer if the index holds fewer entries; an empty slice on an
	// empty index, never an error.
	Query(ctx context.Context, embedding []float32, topK int) ([]string, error)

	// Count returns the number of stored vectors.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}

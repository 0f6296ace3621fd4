package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Ingestion errors. Each aborts only the current ingestion;
	// previously ingested documents are unaffected.

	// ErrExtractionFailed indicates every extraction strategy was
	// exhausted without producing any text.
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrNoChunks indicates extraction succeeded but produced zero
	// usable chunks (e.g. all-whitespace text).
	ErrNoChunks = errors.New("no usable chunks")

	// ErrInvalidChunking indicates a chunking configuration where the
	// overlap is not smaller than the window size.
	ErrInvalidChunking = errors.New("overlap must be smaller than window size")

	// ErrEmbeddingFailed indicates the embedding provider returned zero
	// vectors or a count that does not match the chunk count.
	ErrEmbeddingFailed = errors.New("embedding generation failed")

	// Vector index errors.

	// ErrLengthMismatch indicates the parallel arrays passed to a vector
	// index add did not have equal lengths.
	ErrLengthMismatch = errors.New("parallel array length mismatch")

	// ErrDuplicateID indicates a vector ID already exists in the index.
	// Duplicate adds are rejected rather than silently overwritten.
	ErrDuplicateID = errors.New("duplicate vector ID")

	// Service availability errors.

	// ErrLLMUnavailable indicates the completion service is not configured.
	// Question answering and LLM insight generation are disabled.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. Ingestion and semantic retrieval are disabled.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")
)

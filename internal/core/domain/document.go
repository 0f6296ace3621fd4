package domain

import "time"

// Document represents an ingested document.
// It is created once on successful ingestion and never mutated;
// removal is only possible through explicit deletion.
type Document struct {
	// ID is the opaque unique identifier for the document.
	ID string

	// Filename is the original file name as supplied at ingestion.
	Filename string

	// Content is the full extracted text before chunking.
	Content string

	// ChunkCount is the number of chunks produced at ingestion.
	ChunkCount int

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the document was ingested.
	CreatedAt time.Time
}

// Chunk represents a searchable unit within a document.
// Chunks are derived entities: always regenerable from the owning
// document's content plus the chunking configuration.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Content is the text content of this chunk, words rejoined
	// with single spaces.
	Content string

	// Position is the 0-based, gapless ordinal within the document.
	Position int

	// Embedding is the vector representation for semantic retrieval.
	// Owned by the vector index once added.
	Embedding []float32
}

package driven

import "context"

// TextExtractor converts a document file into raw text.
//
// Implementations run an ordered chain of strategies and return the
// first non-empty result. An empty string with a nil error means every
// strategy was exhausted; callers must treat that as an ingestion
// failure, not as a valid zero-length document.
type TextExtractor interface {
	// Extract returns the raw text of the file at path.
	Extract(ctx context.Context, path string) (string, error)
}

// ExtractStrategy is a single step in an extraction chain.
// Internal errors are reported through ok=false, never propagated:
// the chain's priority policy stays testable per strategy.
type ExtractStrategy interface {
	// Name identifies the strategy for logging.
	Name() string

	// Extract attempts to pull text from the file at path.
	// ok is false when the strategy produced no usable text.
	Extract(ctx context.Context, path string) (text string, ok bool)
}

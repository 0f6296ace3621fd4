// Package chunker splits extracted text into overlapping word windows.
//
// The segmentation is purely lexical - no sentence or semantic
// awareness. Overlap exists to reduce context loss at window edges for
// downstream retrieval.
package chunker

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/docintel-labs/docintel/internal/core/domain"
)

// DefaultWindowSize is the default number of words per chunk.
const DefaultWindowSize = 500

// DefaultOverlap is the default number of words shared between
// adjacent chunks.
const DefaultOverlap = 100

// Chunk splits text into successive windows of windowSize words,
// advancing by windowSize-overlap words each step. The final window
// may be shorter and is still emitted. Words are rejoined with single
// spaces and positions are assigned in emission order from 0.
//
// Empty or whitespace-only text yields an empty slice. overlap must be
// strictly smaller than windowSize; otherwise the window would never
// advance, and the call fails with domain.ErrInvalidChunking.
func Chunk(text, documentID string, windowSize, overlap int) ([]domain.Chunk, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: window size %d", domain.ErrInvalidChunking, windowSize)
	}
	if overlap < 0 || overlap >= windowSize {
		return nil, fmt.Errorf("%w: window size %d, overlap %d", domain.ErrInvalidChunking, windowSize, overlap)
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	step := windowSize - overlap
	chunks := make([]domain.Chunk, 0, len(words)/step+1)

	for start := 0; start < len(words); start += step {
		end := start + windowSize
		if end > len(words) {
			end = len(words)
		}

		chunks = append(chunks, domain.Chunk{
			ID:         uuid.New().String(),
			DocumentID: documentID,
			Content:    strings.Join(words[start:end], " "),
			Position:   len(chunks),
		})
	}

	return chunks, nil
}

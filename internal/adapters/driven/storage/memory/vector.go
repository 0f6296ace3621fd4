package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/docintel-labs/docintel/internal/core/domain"
	"github.com/docintel-labs/docintel/internal/core/ports/driven"
)

// Ensure VectorIndex implements the interface.
var _ driven.VectorIndex = (*VectorIndex)(nil)

// entry holds one stored vector and its payload.
type entry struct {
	embedding []float32
	document  string
	metadata  map[string]any
}

// VectorIndex is an in-memory implementation of driven.VectorIndex
// using a brute-force cosine scan.
type VectorIndex struct {
	mu      sync.RWMutex
	entries map[string]entry
	order   []string
}

// NewVectorIndex creates a new in-memory vector index.
func NewVectorIndex() *VectorIndex {
	return &VectorIndex{
		entries: make(map[string]entry),
	}
}

// Add appends vectors with parallel-array semantics. A duplicate ID,
// within the batch or against stored entries, fails the whole call
// before anything is written.
func (v *VectorIndex) Add(_ context.Context, ids []string, embeddings [][]float32, documents []string, metadatas []map[string]any) error {
	if len(ids) != len(embeddings) || len(ids) != len(documents) || len(ids) != len(metadatas) {
		return fmt.Errorf("%w: ids=%d embeddings=%d documents=%d metadatas=%d",
			domain.ErrLengthMismatch, len(ids), len(embeddings), len(documents), len(metadatas))
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateID, id)
		}
		if _, exists := v.entries[id]; exists {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
	}

	for i, id := range ids {
		v.entries[id] = entry{
			embedding: embeddings[i],
			document:  documents[i],
			metadata:  metadatas[i],
		}
		v.order = append(v.order, id)
	}
	return nil
}

// Query returns stored document texts, nearest first by cosine
// similarity. An empty index yields an empty result.
func (v *VectorIndex) Query(_ context.Context, embedding []float32, topK int) ([]string, error) {
	if topK <= 0 {
		return []string{}, nil
	}

	v.mu.RLock()
	defer v.mu.RUnlock()

	type scored struct {
		document string
		score    float64
	}

	candidates := make([]scored, 0, len(v.entries))
	// Iterate in insertion order so equal scores rank deterministically.
	for _, id := range v.order {
		e := v.entries[id]
		candidates = append(candidates, scored{
			document: e.document,
			score:    cosineSimilarity(embedding, e.embedding),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if topK > len(candidates) {
		topK = len(candidates)
	}

	results := make([]string, 0, topK)
	for _, c := range candidates[:topK] {
		results = append(results, c.document)
	}
	return results, nil
}

// Count returns the number of stored vectors.
func (v *VectorIndex) Count(_ context.Context) (int, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.entries), nil
}

// Close is a no-op for the in-memory index.
func (v *VectorIndex) Close() error {
	return nil
}

// cosineSimilarity computes the cosine of the angle between two
// vectors. Mismatched dimensions or a zero vector score zero.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/docintel-labs/docintel/internal/core/domain"
	"github.com/docintel-labs/docintel/internal/core/ports/driven"
)

// vectorIndex implements driven.VectorIndex on the vectors table.
// Retrieval is a brute-force cosine scan, which is adequate for the
// per-machine corpus sizes this tool targets.
type vectorIndex struct {
	store *Store
}

var _ driven.VectorIndex = (*vectorIndex)(nil)

// Add appends vectors with parallel-array semantics. The whole batch is
// written in one transaction; a duplicate ID rolls it back so nothing
// is written.
func (v *vectorIndex) Add(ctx context.Context, ids []string, embeddings [][]float32, documents []string, metadatas []map[string]any) error {
	if len(ids) != len(embeddings) || len(ids) != len(documents) || len(ids) != len(metadatas) {
		return fmt.Errorf("%w: ids=%d embeddings=%d documents=%d metadatas=%d",
			domain.ErrLengthMismatch, len(ids), len(embeddings), len(documents), len(metadatas))
	}
	if len(ids) == 0 {
		return nil
	}

	// Reject duplicates within the batch before touching the database.
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
	}

	tx, err := v.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	// Check against stored IDs inside the transaction so the whole
	// call fails before any row is committed.
	checkStmt, err := tx.PrepareContext(ctx, "SELECT COUNT(*) FROM vectors WHERE id = ?")
	if err != nil {
		return fmt.Errorf("preparing duplicate check: %w", err)
	}
	defer checkStmt.Close()

	for _, id := range ids {
		var count int
		if err := checkStmt.QueryRowContext(ctx, id).Scan(&count); err != nil {
			return fmt.Errorf("checking id %s: %w", id, err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateID, id)
		}
	}

	insertStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO vectors (id, embedding, document, metadata)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer insertStmt.Close()

	for i, id := range ids {
		metadataJSON, err := json.Marshal(metadatas[i])
		if err != nil {
			return fmt.Errorf("marshalling metadata: %w", err)
		}

		if _, err := insertStmt.ExecContext(ctx, id,
			float32SliceToBytes(embeddings[i]), documents[i], string(metadataJSON)); err != nil {
			return fmt.Errorf("inserting vector %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Query returns stored document texts, nearest first by cosine
// similarity. An empty index yields an empty result.
func (v *vectorIndex) Query(ctx context.Context, embedding []float32, topK int) ([]string, error) {
	if topK <= 0 {
		return []string{}, nil
	}

	rows, err := v.store.db.QueryContext(ctx, "SELECT embedding, document FROM vectors")
	if err != nil {
		return nil, fmt.Errorf("querying vectors: %w", err)
	}
	defer rows.Close()

	type scored struct {
		document string
		score    float64
	}

	var candidates []scored //nolint:prealloc // size unknown from query
	for rows.Next() {
		var blob []byte
		var document string
		if err := rows.Scan(&blob, &document); err != nil {
			return nil, fmt.Errorf("scanning vector: %w", err)
		}
		candidates = append(candidates, scored{
			document: document,
			score:    cosineSimilarity(embedding, bytesToFloat32Slice(blob)),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vectors: %w", err)
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
func (v *vectorIndex) Count(ctx context.Context) (int, error) {
	var count int
	err := v.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM vectors").Scan(&count)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("counting vectors: %w", err)
	}
	return count, nil
}

// Close is a no-op; the underlying connection is owned by the Store.
func (v *vectorIndex) Close() error {
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

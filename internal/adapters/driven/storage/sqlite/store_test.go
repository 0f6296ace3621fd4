package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docintel-labs/docintel/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "docintel-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

// createTestDocument saves a document for tests that need one present.
func createTestDocument(t *testing.T, store *Store, docID string) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	doc := &domain.Document{
		ID:         docID,
		Filename:   docID + ".pdf",
		Content:    "content of " + docID,
		ChunkCount: 1,
		Metadata:   map[string]any{},
		CreatedAt:  now,
	}
	require.NoError(t, store.DocumentStore().SaveDocument(ctx, doc))
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_ErrorHandling(t *testing.T) {
	// Test with invalid path (should fail to create directory)
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "docintel-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	// Verify database file was created
	dbPath := filepath.Join(tempDir, "docintel.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)

	// Verify database connection is working
	err = store.db.Ping()
	assert.NoError(t, err)
}

func TestNewStore_MigrationsIdempotent(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "docintel-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening against an already-migrated database must succeed.
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	var version int
	err = store.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

// ==================== Document Store Tests ====================

func TestDocumentStore_SaveAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	docs := store.DocumentStore()

	now := time.Now().UTC().Truncate(time.Second)
	doc := &domain.Document{
		ID:         "doc-1",
		Filename:   "report.pdf",
		Content:    "quarterly results were strong",
		ChunkCount: 3,
		Metadata:   map[string]any{"pages": "12"},
		CreatedAt:  now,
	}

	require.NoError(t, docs.SaveDocument(ctx, doc))

	got, err := docs.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", got.Filename)
	assert.Equal(t, "quarterly results were strong", got.Content)
	assert.Equal(t, 3, got.ChunkCount)
	assert.Equal(t, "12", got.Metadata["pages"])
	assert.True(t, got.CreatedAt.Equal(now))
}

func TestDocumentStore_SaveUpsertsOnConflict(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	docs := store.DocumentStore()

	doc := &domain.Document{
		ID:        "doc-1",
		Filename:  "v1.pdf",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, docs.SaveDocument(ctx, doc))

	doc.Filename = "v2.pdf"
	doc.ChunkCount = 7
	require.NoError(t, docs.SaveDocument(ctx, doc))

	got, err := docs.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "v2.pdf", got.Filename)
	assert.Equal(t, 7, got.ChunkCount)

	all, err := docs.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDocumentStore_SaveRejectsEmptyID(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.DocumentStore().SaveDocument(context.Background(), &domain.Document{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentStore_GetNotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.DocumentStore().GetDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_ListNewestFirst(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	docs := store.DocumentStore()

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, docs.SaveDocument(ctx, &domain.Document{
			ID:        id,
			Filename:  id + ".pdf",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := docs.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "new", all[0].ID)
	assert.Equal(t, "mid", all[1].ID)
	assert.Equal(t, "old", all[2].ID)
}

func TestDocumentStore_DeleteMissingIsNoOp(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.NoError(t, store.DocumentStore().DeleteDocument(context.Background(), "missing"))
}

func TestDocumentStore_DeleteCascadesInsight(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	createTestDocument(t, store, "doc-1")

	insight := &domain.Insight{
		DocumentID:  "doc-1",
		Summary:     "a summary",
		GeneratedAt: time.Now().UTC(),
	}
	require.NoError(t, store.InsightStore().SaveInsight(ctx, insight))

	require.NoError(t, store.DocumentStore().DeleteDocument(ctx, "doc-1"))

	_, err := store.InsightStore().GetInsight(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ==================== Insight Store Tests ====================

func TestInsightStore_SaveAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	createTestDocument(t, store, "doc-1")

	now := time.Now().UTC().Truncate(time.Second)
	insight := &domain.Insight{
		DocumentID:  "doc-1",
		Summary:     "revenue grew in all regions",
		KeyPoints:   []string{"revenue grew", "costs were flat"},
		Entities:    []string{"Acme", "Europe"},
		GeneratedAt: now,
	}
	require.NoError(t, store.InsightStore().SaveInsight(ctx, insight))

	got, err := store.InsightStore().GetInsight(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "revenue grew in all regions", got.Summary)
	assert.Equal(t, []string{"revenue grew", "costs were flat"}, got.KeyPoints)
	assert.Equal(t, []string{"Acme", "Europe"}, got.Entities)
	assert.True(t, got.GeneratedAt.Equal(now))
}

func TestInsightStore_SaveReplacesWholesale(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	createTestDocument(t, store, "doc-1")

	first := &domain.Insight{
		DocumentID:  "doc-1",
		Summary:     "first pass",
		KeyPoints:   []string{"a", "b", "c"},
		GeneratedAt: time.Now().UTC(),
	}
	require.NoError(t, store.InsightStore().SaveInsight(ctx, first))

	second := &domain.Insight{
		DocumentID:  "doc-1",
		Summary:     "second pass",
		GeneratedAt: time.Now().UTC(),
	}
	require.NoError(t, store.InsightStore().SaveInsight(ctx, second))

	got, err := store.InsightStore().GetInsight(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "second pass", got.Summary)
	assert.Empty(t, got.KeyPoints)
}

func TestInsightStore_GetNotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.InsightStore().GetInsight(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInsightStore_SaveRejectsEmptyDocumentID(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.InsightStore().SaveInsight(context.Background(), &domain.Insight{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ==================== Embedding Serialization Tests ====================

func TestFloat32BytesRoundTrip(t *testing.T) {
	original := []float32{0.1, -0.5, 2.75, 0, 1e-8}

	encoded := float32SliceToBytes(original)
	decoded := bytesToFloat32Slice(encoded)

	assert.Equal(t, original, decoded)
}

func TestFloat32BytesEmpty(t *testing.T) {
	assert.Nil(t, float32SliceToBytes(nil))
	assert.Nil(t, bytesToFloat32Slice(nil))
}

package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docintel-labs/docintel/internal/chunker"
	"github.com/docintel-labs/docintel/internal/core/domain"
	"github.com/docintel-labs/docintel/internal/core/ports/driven"
	"github.com/docintel-labs/docintel/internal/core/ports/driving"
	"github.com/docintel-labs/docintel/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService runs the ingestion pipeline: extract, chunk, embed,
// index, then generate insights.
type IngestService struct {
	extractor        driven.TextExtractor
	docStore         driven.DocumentStore
	vectorIndex      driven.VectorIndex
	embeddingService driven.EmbeddingService
	insightService   *InsightService
	chunking         domain.ChunkingSettings
}

// NewIngestService creates a new ingestion service. The insightService
// parameter is optional (can be nil); without it ingested documents
// simply have no insight record.
func NewIngestService(
	extractor driven.TextExtractor,
	docStore driven.DocumentStore,
	vectorIndex driven.VectorIndex,
	embeddingService driven.EmbeddingService,
	insightService *InsightService,
	chunking domain.ChunkingSettings,
) *IngestService {
	if chunking.WindowSize == 0 {
		chunking = domain.DefaultChunking
	}
	return &IngestService{
		extractor:        extractor,
		docStore:         docStore,
		vectorIndex:      vectorIndex,
		embeddingService: embeddingService,
		insightService:   insightService,
		chunking:         chunking,
	}
}

// Ingest processes the file at path into indexed chunks.
//
// Extraction, chunking, embedding and indexing are all required steps;
// any failure aborts the ingestion with nothing indexed. Insight
// generation runs last and is best-effort: its failure is logged and
// the document is still returned.
func (s *IngestService) Ingest(ctx context.Context, path string) (*domain.Document, error) {
	logger.Section("Ingestion")
	logger.Debug("File: %s", path)

	text, err := s.extractor.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", path, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %s yielded no text", domain.ErrExtractionFailed, path)
	}
	logger.Debug("Extracted %d characters", len(text))

	documentID := uuid.New().String()

	chunks, err := chunker.Chunk(text, documentID, s.chunking.WindowSize, s.chunking.Overlap)
	if err != nil {
		return nil, fmt.Errorf("chunking %s: %w", path, err)
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoChunks, path)
	}
	logger.Debug("Chunked into %d windows", len(chunks))

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}

	embeddings, err := s.embeddingService.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingFailed, err)
	}
	if len(embeddings) != len(chunks) {
		return nil, fmt.Errorf("%w: got %d embeddings for %d chunks",
			domain.ErrEmbeddingFailed, len(embeddings), len(chunks))
	}

	filename := filepath.Base(path)

	ids := make([]string, len(chunks))
	documents := make([]string, len(chunks))
	metadatas := make([]map[string]any, len(chunks))
	for i, chunk := range chunks {
		ids[i] = chunk.ID
		documents[i] = chunk.Content
		metadatas[i] = map[string]any{
			"document_id": documentID,
			"filename":    filename,
			"position":    chunk.Position,
		}
	}

	if err := s.vectorIndex.Add(ctx, ids, embeddings, documents, metadatas); err != nil {
		return nil, fmt.Errorf("indexing chunks: %w", err)
	}

	doc := &domain.Document{
		ID:         documentID,
		Filename:   filename,
		Content:    text,
		ChunkCount: len(chunks),
		Metadata:   map[string]any{"path": path},
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}

	// Insight generation never fails the ingestion.
	if s.insightService != nil {
		if _, err := s.insightService.Generate(ctx, documentID, text); err != nil {
			logger.Warn("Insight generation for %s failed: %v", filename, err)
		}
	}

	logger.Info("Ingested %s: %d chunks", filename, len(chunks))
	return doc, nil
}

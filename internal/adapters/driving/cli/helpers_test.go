package cli

import (
	"context"
	"errors"
	"time"

	"github.com/docintel-labs/docintel/internal/core/domain"
	"github.com/docintel-labs/docintel/internal/core/ports/driving"
)

// Fakes for the driving ports. setupTestServices wires them into the
// package service vars so commands execute without real adapters.

type fakeIngestService struct {
	doc   *domain.Document
	err   error
	paths []string
}

var _ driving.IngestService = (*fakeIngestService)(nil)

func (f *fakeIngestService) Ingest(_ context.Context, path string) (*domain.Document, error) {
	f.paths = append(f.paths, path)
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

type fakeAnswerService struct {
	answer    string
	err       error
	questions []string
	topKs     []int
}

var _ driving.AnswerService = (*fakeAnswerService)(nil)

func (f *fakeAnswerService) Answer(_ context.Context, question string, topK int) (string, error) {
	f.questions = append(f.questions, question)
	f.topKs = append(f.topKs, topK)
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

type fakeInsightService struct {
	insight *domain.Insight
	err     error
}

var _ driving.InsightService = (*fakeInsightService)(nil)

func (f *fakeInsightService) Get(_ context.Context, documentID string) (*domain.Insight, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.insight == nil || f.insight.DocumentID != documentID {
		return nil, domain.ErrNotFound
	}
	return f.insight, nil
}

type fakeDocumentService struct {
	docs    []domain.Document
	getErr  error
	delErr  error
	deleted []string
}

var _ driving.DocumentService = (*fakeDocumentService)(nil)

func (f *fakeDocumentService) List(_ context.Context) ([]domain.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.docs, nil
}

func (f *fakeDocumentService) Get(_ context.Context, documentID string) (*domain.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.docs {
		if f.docs[i].ID == documentID {
			return &f.docs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDocumentService) Delete(_ context.Context, documentID string) error {
	f.deleted = append(f.deleted, documentID)
	return f.delErr
}

// testCreatedAt keeps timestamps stable across test output assertions.
var testCreatedAt = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// setupTestServices wires fake services into the package vars and
// returns a cleanup func restoring the previous state.
func setupTestServices() func() {
	prevIngest := ingestService
	prevAnswer := answerService
	prevInsight := insightService
	prevDocument := documentService
	prevReady := servicesReady

	ingestService = &fakeIngestService{
		doc: &domain.Document{
			ID:         "doc-1",
			Filename:   "report.pdf",
			Content:    "quarterly revenue grew",
			ChunkCount: 3,
			CreatedAt:  testCreatedAt,
		},
	}
	answerService = &fakeAnswerService{answer: "Revenue grew 12% year over year."}
	insightService = &fakeInsightService{
		insight: &domain.Insight{
			DocumentID:  "doc-1",
			Summary:     "A quarterly report covering revenue growth.",
			KeyPoints:   []string{"Revenue grew twelve percent year over year"},
			Entities:    []string{"Acme Corp"},
			GeneratedAt: testCreatedAt,
		},
	}
	documentService = &fakeDocumentService{
		docs: []domain.Document{
			{
				ID:         "doc-1",
				Filename:   "report.pdf",
				Content:    "quarterly revenue grew",
				ChunkCount: 3,
				CreatedAt:  testCreatedAt,
			},
			{
				ID:         "doc-2",
				Filename:   "notes.txt",
				Content:    "meeting notes",
				ChunkCount: 1,
				CreatedAt:  testCreatedAt.Add(-time.Hour),
			},
		},
	}
	servicesReady = true

	return func() {
		ingestService = prevIngest
		answerService = prevAnswer
		insightService = prevInsight
		documentService = prevDocument
		servicesReady = prevReady
	}
}

// errFakeFailure is a generic failure for error-path tests.
var errFakeFailure = errors.New("backend exploded")

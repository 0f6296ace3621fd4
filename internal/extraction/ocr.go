package extraction

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docintel-labs/docintel/internal/core/ports/driven"
	"github.com/docintel-labs/docintel/internal/logger"
)

// ocrDPI is the rasterisation resolution. 300 DPI is the floor below
// which tesseract's accuracy degrades sharply.
const ocrDPI = "300"

// Ensure OCRStrategy implements the interface.
var _ driven.ExtractStrategy = (*OCRStrategy)(nil)

// OCRStrategy is the strategy of last resort for scanned or image-only
// documents: rasterise every page to a 300 DPI image, run tesseract on
// each, and concatenate the results in page order.
type OCRStrategy struct {
	runner    CommandRunner
	available func() error
}

// NewOCRStrategy creates the OCR fallback strategy.
func NewOCRStrategy() *OCRStrategy {
	return &OCRStrategy{runner: execRunner{}, available: OCRAvailable}
}

// NewOCRStrategyWithRunner creates the strategy with an injected
// command runner for testing. The PATH check is skipped: the injected
// runner stands in for the external tools.
func NewOCRStrategyWithRunner(runner CommandRunner) *OCRStrategy {
	return &OCRStrategy{runner: runner, available: func() error { return nil }}
}

// Name identifies the strategy for logging.
func (s *OCRStrategy) Name() string {
	return "ocr"
}

// Extract rasterises and OCRs the document. The page loop honours ctx
// so a long-running ingestion stays cancellable at page granularity.
// Temporary page images are removed on every exit path.
func (s *OCRStrategy) Extract(ctx context.Context, path string) (string, bool) {
	if err := s.available(); err != nil {
		logger.Debug("ocr unavailable: %v", err)
		return "", false
	}

	tmpDir, err := os.MkdirTemp("", "docintel-ocr-*")
	if err != nil {
		logger.Warn("ocr: temp dir: %v", err)
		return "", false
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	if _, err := s.runner.Run(ctx, pdfToPPMBinary, "-png", "-r", ocrDPI, path, prefix); err != nil {
		logger.Debug("ocr: rasterisation failed: %v", err)
		return "", false
	}

	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil || len(pages) == 0 {
		logger.Debug("ocr: no page images produced")
		return "", false
	}
	// pdftoppm zero-pads page numbers, so lexical order is page order.
	sort.Strings(pages)

	logger.Info("ocr: %d pages at %s DPI", len(pages), ocrDPI)

	var sb strings.Builder
	for _, page := range pages {
		if ctx.Err() != nil {
			logger.Warn("ocr cancelled: %v", ctx.Err())
			return "", false
		}

		out, err := s.runner.Run(ctx, tesseractBinary, page, "stdout")
		if err != nil {
			logger.Debug("ocr: tesseract failed on %s: %v", filepath.Base(page), err)
			continue
		}
		sb.Write(out)
		sb.WriteString("\n")
	}

	text := strings.TrimSpace(sb.String())
	return text, text != ""
}

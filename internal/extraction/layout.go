package extraction

import (
	"context"
	"strings"

	"github.com/docintel-labs/docintel/internal/core/ports/driven"
	"github.com/docintel-labs/docintel/internal/logger"
)

// Ensure LayoutStrategy implements the interface.
var _ driven.ExtractStrategy = (*LayoutStrategy)(nil)

// LayoutStrategy re-parses the document with pdftotext's
// layout-preserving mode. Some PDFs with unusual content streams
// defeat the in-process parser but extract cleanly here.
type LayoutStrategy struct {
	runner    CommandRunner
	available func() error
}

// NewLayoutStrategy creates the layout-aware strategy.
func NewLayoutStrategy() *LayoutStrategy {
	return &LayoutStrategy{runner: execRunner{}, available: CheckAvailable}
}

// NewLayoutStrategyWithRunner creates the strategy with an injected
// command runner for testing. The PATH check is skipped: the injected
// runner stands in for the external tool.
func NewLayoutStrategyWithRunner(runner CommandRunner) *LayoutStrategy {
	return &LayoutStrategy{runner: runner, available: func() error { return nil }}
}

// Name identifies the strategy for logging.
func (s *LayoutStrategy) Name() string {
	return "layout"
}

// Extract runs pdftotext -layout, writing to stdout via "-".
func (s *LayoutStrategy) Extract(ctx context.Context, path string) (string, bool) {
	if err := s.available(); err != nil {
		logger.Debug("layout extraction unavailable: %v", err)
		return "", false
	}

	out, err := s.runner.Run(ctx, pdfToTextBinary, "-layout", path, "-")
	if err != nil {
		logger.Debug("layout extraction failed: %v", err)
		return "", false
	}

	text := strings.TrimSpace(string(out))
	return text, text != ""
}

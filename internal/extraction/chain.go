package extraction

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/docintel-labs/docintel/internal/core/ports/driven"
	"github.com/docintel-labs/docintel/internal/logger"
)

// Ensure Chain implements the interface.
var _ driven.TextExtractor = (*Chain)(nil)

// Chain tries an ordered list of strategies and returns the first
// non-empty result. Strategy order is a fixed priority list; a
// strategy's internal errors count as "no result" and never stop the
// chain.
type Chain struct {
	strategies []driven.ExtractStrategy
}

// NewChain creates a chain over the given strategies, tried in order.
func NewChain(strategies ...driven.ExtractStrategy) *Chain {
	return &Chain{strategies: strategies}
}

// NewPDFChain creates the standard PDF chain: native text layer,
// layout-aware re-parse, OCR last.
func NewPDFChain() *Chain {
	return NewChain(
		NewNativeStrategy(),
		NewLayoutStrategy(),
		NewOCRStrategy(),
	)
}

// Extract runs the chain on the file at path. Non-PDF formats bypass
// the chain: plain text is read directly, markdown, HTML and DOCX are
// converted to text first. An empty result with a nil error means
// every strategy was exhausted; callers treat that as an ingestion
// failure.
func (c *Chain) Extract(ctx context.Context, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(data)), nil
	case ".md", ".markdown":
		return readMarkdown(path)
	case ".html", ".htm", ".xhtml":
		return readHTML(path)
	case ".docx":
		return docxToText(path)
	}

	for _, strategy := range c.strategies {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		logger.Debug("extraction: trying %s strategy", strategy.Name())
		text, ok := strategy.Extract(ctx, path)
		if ok && strings.TrimSpace(text) != "" {
			logger.Info("extraction: %s strategy produced %d chars", strategy.Name(), len(text))
			return strings.TrimSpace(text), nil
		}
		logger.Debug("extraction: %s strategy produced nothing", strategy.Name())
	}

	logger.Warn("extraction: all strategies exhausted for %s", filepath.Base(path))
	return "", nil
}

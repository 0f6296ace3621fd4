package extraction

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/docintel-labs/docintel/internal/core/ports/driven"
	"github.com/docintel-labs/docintel/internal/logger"
)

// Ensure NativeStrategy implements the interface.
var _ driven.ExtractStrategy = (*NativeStrategy)(nil)

// NativeStrategy reads the PDF's embedded text layer in-process.
// This is the cheapest strategy and succeeds for digitally-authored
// documents; scanned documents have no text layer and yield nothing.
type NativeStrategy struct{}

// NewNativeStrategy creates the native text-layer strategy.
func NewNativeStrategy() *NativeStrategy {
	return &NativeStrategy{}
}

// Name identifies the strategy for logging.
func (s *NativeStrategy) Name() string {
	return "native"
}

// Extract reads the embedded text layer. Parser panics from malformed
// PDFs are recovered and reported as no result.
func (s *NativeStrategy) Extract(_ context.Context, path string) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("native extraction panicked: %v", r)
			text, ok = "", false
		}
	}()

	f, rdr, err := pdf.Open(path)
	if err != nil {
		logger.Debug("native extraction: open failed: %v", err)
		return "", false
	}
	defer f.Close()

	plain, err := rdr.GetPlainText()
	if err != nil {
		logger.Debug("native extraction: no text layer: %v", err)
		return "", false
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		logger.Debug("native extraction: read failed: %v", err)
		return "", false
	}

	text = strings.TrimSpace(buf.String())
	return text, text != ""
}

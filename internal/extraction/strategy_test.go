package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockRunner is a test double for CommandRunner.
type mockRunner struct {
	output []byte
	err    error
	calls  [][]string
}

func (m *mockRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	m.calls = append(m.calls, append([]string{name}, args...))
	return m.output, m.err
}

func TestNativeStrategy_MissingFile(t *testing.T) {
	s := NewNativeStrategy()
	text, ok := s.Extract(context.Background(), "/does/not/exist.pdf")

	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestLayoutStrategy_RunnerOutput(t *testing.T) {
	runner := &mockRunner{output: []byte("  Layout Text \n")}
	s := NewLayoutStrategyWithRunner(runner)

	text, ok := s.Extract(context.Background(), "/doc.pdf")
	assert.True(t, ok)
	assert.Equal(t, "Layout Text", text)

	// pdftotext -layout <path> -
	assert.Equal(t, [][]string{{pdfToTextBinary, "-layout", "/doc.pdf", "-"}}, runner.calls)
}

func TestLayoutStrategy_RunnerError(t *testing.T) {
	runner := &mockRunner{err: errors.New("pdftotext crashed")}
	s := NewLayoutStrategyWithRunner(runner)

	text, ok := s.Extract(context.Background(), "/doc.pdf")
	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestLayoutStrategy_Unavailable(t *testing.T) {
	runner := &mockRunner{output: []byte("never used")}
	s := NewLayoutStrategyWithRunner(runner)
	s.available = func() error { return ErrToolNotFound }

	text, ok := s.Extract(context.Background(), "/doc.pdf")
	assert.False(t, ok)
	assert.Empty(t, text)
	assert.Empty(t, runner.calls, "runner must not be invoked when the tool is missing")
}

func TestLayoutStrategy_EmptyOutput(t *testing.T) {
	runner := &mockRunner{output: []byte("   \n ")}
	s := NewLayoutStrategyWithRunner(runner)

	_, ok := s.Extract(context.Background(), "/doc.pdf")
	assert.False(t, ok, "whitespace-only output is no result")
}

func TestOCRStrategy_UnavailableTools(t *testing.T) {
	runner := &mockRunner{output: []byte("never used")}
	s := NewOCRStrategyWithRunner(runner)
	s.available = func() error { return errors.New("tesseract not found in PATH") }

	text, ok := s.Extract(context.Background(), "/doc.pdf")
	assert.False(t, ok)
	assert.Empty(t, text)
	assert.Empty(t, runner.calls)
}

func TestOCRStrategy_RasterisationError(t *testing.T) {
	runner := &mockRunner{err: errors.New("pdftoppm crashed")}
	s := NewOCRStrategyWithRunner(runner)

	text, ok := s.Extract(context.Background(), "/doc.pdf")
	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestOCRStrategy_NoPagesProduced(t *testing.T) {
	// The mock runner succeeds but writes no page images.
	runner := &mockRunner{output: []byte("")}
	s := NewOCRStrategyWithRunner(runner)

	text, ok := s.Extract(context.Background(), "/doc.pdf")
	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestStrategyNames(t *testing.T) {
	assert.Equal(t, "native", NewNativeStrategy().Name())
	assert.Equal(t, "layout", NewLayoutStrategy().Name())
	assert.Equal(t, "ocr", NewOCRStrategy().Name())
}

func TestInstallInstructions(t *testing.T) {
	instructions := InstallInstructions()
	assert.Contains(t, instructions, "pdftotext")
	assert.Contains(t, instructions, "brew install poppler")
	assert.Contains(t, instructions, "apt install poppler-utils")
	assert.Contains(t, instructions, "tesseract")
}

func TestErrToolNotFound(t *testing.T) {
	assert.Error(t, ErrToolNotFound)
	assert.Contains(t, ErrToolNotFound.Error(), "pdftotext")
}

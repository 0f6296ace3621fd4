package extraction

import (
	"context"
	"errors"
	"os/exec"
)

// External tools used by the layout and OCR strategies.
const (
	pdfToTextBinary = "pdftotext"
	pdfToPPMBinary  = "pdftoppm"
	tesseractBinary = "tesseract"
)

// ErrToolNotFound indicates the poppler tools are not installed.
var ErrToolNotFound = errors.New("pdftotext not found in PATH")

// CommandRunner executes external commands. Injectable for testing.
type CommandRunner interface {
	// Run executes the named command and returns its combined stdout.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// CheckAvailable verifies the poppler tools are installed.
// The native strategy works without them; layout and OCR do not.
func CheckAvailable() error {
	if _, err := exec.LookPath(pdfToTextBinary); err != nil {
		return ErrToolNotFound
	}
	return nil
}

// OCRAvailable verifies the rasteriser and OCR engine are installed.
func OCRAvailable() error {
	if _, err := exec.LookPath(pdfToPPMBinary); err != nil {
		return errors.New("pdftoppm not found in PATH")
	}
	if _, err := exec.LookPath(tesseractBinary); err != nil {
		return errors.New("tesseract not found in PATH")
	}
	return nil
}

// InstallInstructions returns platform hints for installing the
// external extraction tools.
func InstallInstructions() string {
	return `DocIntel uses poppler's pdftotext/pdftoppm and tesseract for
layout-aware extraction and OCR:

  macOS:         brew install poppler tesseract
  Debian/Ubuntu: sudo apt install poppler-utils tesseract-ocr
  Fedora:        sudo dnf install poppler-utils tesseract

The native text-layer strategy works without them, but scanned
documents cannot be ingested.`
}

// Package extraction converts document files into raw text.
//
// Extraction runs an ordered chain of strategies, each attempted only
// when the previous produced no usable text:
//
//  1. native: read the embedded text layer in-process
//  2. layout: re-parse with pdftotext's layout-preserving mode
//  3. ocr: rasterise pages at 300 DPI and run tesseract per page
//
// Digital PDFs never pay the OCR cost; OCR only engages for scanned or
// image-only documents. The order is a fixed priority list with no
// retries within a strategy.
//
// Non-PDF formats bypass the chain: plain text is read directly, and
// markdown, HTML and DOCX are converted to text before chunking.
package extraction

// Package domain defines the core business entities for DocIntel.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An ingested document with its extracted text
//   - Chunk: An overlapping word-window slice, the unit of embedding
//   - Insight: The bounded structured summary derived per document
//   - Settings: AI provider configuration
//
// All other packages depend on domain; domain depends on nothing.
package domain

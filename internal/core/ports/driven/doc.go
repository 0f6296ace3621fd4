// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - TextExtractor: Converts a document file into raw text
//   - DocumentStore: Document persistence
//   - InsightStore: Insight record persistence
//   - VectorIndex: Durable vector storage and nearest-neighbour retrieval
//   - EmbeddingService: Generates vector embeddings
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Completion model operations. Without it, question
//     answering is disabled and insight generation falls back to the
//     deterministic heuristic parser.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extraction package
package driven

package driving

import "context"

// AnswerService answers natural-language questions grounded on the
// indexed document chunks.
type AnswerService interface {
	// Answer embeds the question, retrieves the topK nearest chunks
	// and conditions the completion model on them. topK <= 0 selects
	// the default. When retrieval finds nothing, a fixed "no relevant
	// information" answer is returned without calling the model.
	Answer(ctx context.Context, question string, topK int) (string, error)
}

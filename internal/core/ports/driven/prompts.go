package driven

// Prompt template names understood by the PromptStore.
const (
	// PromptAnswer grounds an answer in retrieved context. Takes two
	// placeholders: the joined context block and the question.
	PromptAnswer = "answer"

	// PromptInsight asks for strict-JSON document insights. Takes one
	// placeholder: the document text.
	PromptInsight = "insight"
)

// PromptStore provides LLM prompt templates, allowing users to
// customise them without rebuilding.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached templates, forcing fresh loads.
	Reload()

	// Dir returns the directory prompts are loaded from.
	Dir() string
}

package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files or embed them in the binary.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return a sensible default
	// or an error, depending on whether the prompt is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names used throughout the application.
const (
	// PromptRuleExtraction asks for the business rules of a text, one per line.
	// The template expects a %s placeholder for the (truncated) text.
	PromptRuleExtraction = "rule_extraction"

	// PromptControlPoint turns one rule into a testable control point.
	// The template expects a %s placeholder for the rule.
	PromptControlPoint = "control_point"

	// PromptTestCase asks for a structured test case.
	// The template expects %s placeholders for the control point, the ID and the type.
	PromptTestCase = "test_case"
)

// PromptStoreAware is an optional interface for components that can use custom prompts.
type PromptStoreAware interface {
	// SetPromptStore sets the prompt store for loading customisable prompts.
	// If not set, the component uses its built-in default prompts.
	SetPromptStore(store PromptStore)
}

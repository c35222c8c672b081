package driven

import "github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"

// AIConfigValidator checks text generation settings before they are saved.
type AIConfigValidator interface {
	// ValidateLLM pings the configured provider. An unconfigured provider
	// is valid: every stage has a heuristic fallback.
	ValidateLLM(config *domain.LLMSettings) error
}

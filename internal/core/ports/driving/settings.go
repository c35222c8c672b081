package driving

import "github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetLLMProvider configures the text-generation provider. For Azure,
	// model is the deployment name and baseURL the resource endpoint.
	SetLLMProvider(provider domain.AIProvider, model, apiKey, baseURL string) error

	// SetValue parses and stores one setting by its config key.
	SetValue(key, value string) error

	// Keys lists the settable config keys.
	Keys() []string

	// Validate checks that the current settings are consistent.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
	ValidateLLMConfig() error

	// GetPipelineConfig returns the text cleaning pipeline configuration.
	GetPipelineConfig() domain.PipelineConfig
}

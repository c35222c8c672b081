package domain

const unknownDescription = "Unknown"

// AIProvider identifies a text-generation service provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderAzure is an Azure OpenAI deployment.
	AIProviderAzure AIProvider = "azure"

	// AIProviderOllama is local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderAzure, AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderAzure || p == AIProviderOpenAI || p == AIProviderAnthropic
}

// RequiresEndpoint returns true if this provider has no usable default endpoint.
func (p AIProvider) RequiresEndpoint() bool {
	return p == AIProviderAzure
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderAzure:
		return "Azure OpenAI (deployment)"
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	default:
		return unknownDescription
	}
}

// Generation defaults.
const (
	DefaultTemperature    = 0.7
	DefaultMaxTokens      = 1000
	DefaultAzureVersion   = "2024-02-15-preview"
	DefaultRequestsPerSec = 2.0
)

// LLMSettings holds text-generation provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the model name, or the deployment name for Azure.
	Model string

	// BaseURL is the API endpoint.
	BaseURL string

	// APIKey is the API key.
	APIKey string

	// APIVersion is the Azure API version.
	APIVersion string

	// Temperature is the sampling temperature.
	Temperature float64

	// MaxTokens caps the completion length.
	MaxTokens int

	// RequestsPerSecond paces calls; zero disables pacing.
	RequestsPerSecond float64
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	if l.Provider.RequiresEndpoint() && l.BaseURL == "" {
		return false
	}
	return true
}

// Linguistic model names.
const (
	LanguageModelFrench = "fr"
	LanguageModelNone   = "none"
)

// NLPSettings holds linguistic model configuration.
type NLPSettings struct {
	// Model selects the linguistic model; "none" disables it.
	Model string

	// MinWordLength drops shorter tokens during cleaning.
	MinWordLength int
}

// Enabled returns true if a linguistic model should be loaded.
func (n NLPSettings) Enabled() bool {
	return n.Model != "" && n.Model != LanguageModelNone
}

// MatchingSettings holds rule to control point matching configuration.
type MatchingSettings struct {
	// Threshold is the similarity at which a rule counts as covered.
	Threshold float64
}

// GenerationSettings holds test-case generation configuration.
type GenerationSettings struct {
	// Seed feeds the template picker; zero seeds from the clock.
	Seed int64
}

// AppSettings holds all application settings.
type AppSettings struct {
	LLM        LLMSettings
	NLP        NLPSettings
	Matching   MatchingSettings
	Generation GenerationSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The LLM is left unconfigured; users set it up via the settings wizard
// or the environment.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		LLM: LLMSettings{
			Temperature:       DefaultTemperature,
			MaxTokens:         DefaultMaxTokens,
			APIVersion:        DefaultAzureVersion,
			RequestsPerSecond: DefaultRequestsPerSec,
		},
		NLP: NLPSettings{
			Model:         LanguageModelFrench,
			MinWordLength: 3,
		},
		Matching: MatchingSettings{
			Threshold: DefaultThreshold,
		},
	}
}

// AllLLMProviders returns providers that support LLM operations.
func AllLLMProviders() []AIProvider {
	return []AIProvider{
		AIProviderAzure,
		AIProviderOpenAI,
		AIProviderOllama,
		AIProviderAnthropic,
	}
}

// DefaultLLMModels returns default models for each LLM provider.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderAzure:     "gpt-4o",
		AIProviderOllama:    "llama3.2",
		AIProviderOpenAI:    "gpt-4o-mini",
		AIProviderAnthropic: "claude-3-5-sonnet-latest",
	}
}

// PipelineConfig holds the text cleaning pipeline configuration.
// Uses generic map-based config so new processors can be added
// without modifying this struct.
type PipelineConfig struct {
	// Processors is the ordered list of processor names to run.
	Processors []string

	// ProcessorConfigs holds per-processor configuration as generic maps.
	ProcessorConfigs map[string]map[string]any
}

// GetProcessorConfig returns config for a specific processor, or nil if not set.
func (c *PipelineConfig) GetProcessorConfig(name string) map[string]any {
	if c.ProcessorConfigs == nil {
		return nil
	}
	return c.ProcessorConfigs[name]
}

// DefaultPipelineConfig returns the cleaning pipeline used for frequency analysis.
func DefaultPipelineConfig(minWordLength int) PipelineConfig {
	if minWordLength <= 0 {
		minWordLength = 3
	}
	return PipelineConfig{
		Processors: []string{"normalise", "lemmatise"},
		ProcessorConfigs: map[string]map[string]any{
			"lemmatise": {"min_length": minWordLength},
		},
	}
}

package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyLLMProvider    = "llm.provider"
	keyLLMModel       = "llm.model"
	keyLLMBaseURL     = "llm.base_url"
	keyLLMAPIKey      = "llm.api_key"
	keyLLMAPIVersion  = "llm.api_version"
	keyLLMTemperature = "llm.temperature"
	keyLLMMaxTokens   = "llm.max_tokens"
	keyLLMRate        = "llm.requests_per_second"
	keyNLPModel       = "nlp.model"
	keyNLPMinLength   = "nlp.min_word_length"
	keyThreshold      = "matching.threshold"
	keySeed           = "generation.seed"
)

// valueKind tells SetValue how to parse a raw string.
type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindFloat
)

var settableKeys = map[string]valueKind{
	keyLLMProvider:    kindString,
	keyLLMModel:       kindString,
	keyLLMBaseURL:     kindString,
	keyLLMAPIKey:      kindString,
	keyLLMAPIVersion:  kindString,
	keyLLMTemperature: kindFloat,
	keyLLMMaxTokens:   kindInt,
	keyLLMRate:        kindFloat,
	keyNLPModel:       kindString,
	keyNLPMinLength:   kindInt,
	keyThreshold:      kindFloat,
	keySeed:           kindInt,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	aiValidator driven.AIConfigValidator
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, aiValidator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		aiValidator: aiValidator,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	provider := s.getProvider(keyLLMProvider, defaults.LLM.Provider)
	model := s.getString(keyLLMModel, defaults.LLM.Model)
	if model == "" && provider.IsValid() {
		model = domain.DefaultLLMModels()[provider]
	}

	settings := &domain.AppSettings{
		LLM: domain.LLMSettings{
			Provider:          provider,
			Model:             model,
			BaseURL:           s.configStore.GetString(keyLLMBaseURL),
			APIKey:            s.configStore.GetString(keyLLMAPIKey),
			APIVersion:        s.getString(keyLLMAPIVersion, defaults.LLM.APIVersion),
			Temperature:       s.getFloat(keyLLMTemperature, defaults.LLM.Temperature),
			MaxTokens:         s.getInt(keyLLMMaxTokens, defaults.LLM.MaxTokens),
			RequestsPerSecond: s.getFloat(keyLLMRate, defaults.LLM.RequestsPerSecond),
		},
		NLP: domain.NLPSettings{
			Model:         s.getString(keyNLPModel, defaults.NLP.Model),
			MinWordLength: s.getInt(keyNLPMinLength, defaults.NLP.MinWordLength),
		},
		Matching: domain.MatchingSettings{
			Threshold: s.getFloat(keyThreshold, defaults.Matching.Threshold),
		},
		Generation: domain.GenerationSettings{
			Seed: int64(s.configStore.GetInt(keySeed)),
		},
	}

	return settings, nil
}

// Save persists application settings. An empty API key leaves the stored
// key untouched.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyLLMProvider, settings.LLM.Provider.String()},
		{keyLLMModel, settings.LLM.Model},
		{keyLLMBaseURL, settings.LLM.BaseURL},
		{keyLLMAPIVersion, settings.LLM.APIVersion},
		{keyLLMTemperature, settings.LLM.Temperature},
		{keyLLMMaxTokens, settings.LLM.MaxTokens},
		{keyLLMRate, settings.LLM.RequestsPerSecond},
		{keyNLPModel, settings.NLP.Model},
		{keyNLPMinLength, settings.NLP.MinWordLength},
		{keyThreshold, settings.Matching.Threshold},
		{keySeed, settings.Generation.Seed},
	}
	if settings.LLM.APIKey != "" {
		values = append(values, struct {
			key   string
			value any
		}{keyLLMAPIKey, settings.LLM.APIKey})
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// SetLLMProvider configures the LLM provider.
func (s *SettingsService) SetLLMProvider(provider domain.AIProvider, model, apiKey, baseURL string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: invalid LLM provider: %s", domain.ErrInvalidInput, provider)
	}
	if provider.RequiresAPIKey() && apiKey == "" {
		return fmt.Errorf("%w: API key required for %s", domain.ErrInvalidInput, provider)
	}
	if provider.RequiresEndpoint() && baseURL == "" {
		return fmt.Errorf("%w: endpoint required for %s", domain.ErrInvalidInput, provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.LLM.Provider = provider
	settings.LLM.APIKey = apiKey

	if model != "" {
		settings.LLM.Model = model
	} else {
		settings.LLM.Model = domain.DefaultLLMModels()[provider]
	}

	switch {
	case baseURL != "":
		settings.LLM.BaseURL = baseURL
	case provider.IsLocal():
		settings.LLM.BaseURL = "http://localhost:11434"
	default:
		// Cloud providers use their public endpoint.
		settings.LLM.BaseURL = ""
	}

	return s.Save(settings)
}

// SetValue parses, stores and saves one setting.
func (s *SettingsService) SetValue(key, value string) error {
	kind, ok := settableKeys[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q (known: %s)", domain.ErrInvalidInput, key, strings.Join(s.Keys(), ", "))
	}

	var parsed any
	switch kind {
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects an integer", domain.ErrInvalidInput, key)
		}
		parsed = n
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s expects a number", domain.ErrInvalidInput, key)
		}
		parsed = f
	default:
		parsed = value
	}

	if err := validateValue(key, parsed); err != nil {
		return err
	}
	if err := s.configStore.Set(key, parsed); err != nil {
		return err
	}
	return s.configStore.Save()
}

func validateValue(key string, value any) error {
	switch key {
	case keyLLMProvider:
		if p := domain.AIProvider(value.(string)); p != "" && !p.IsValid() {
			return fmt.Errorf("%w: invalid LLM provider: %s", domain.ErrInvalidInput, p)
		}
	case keyThreshold:
		if t := value.(float64); !domain.ValidThreshold(t) {
			return fmt.Errorf("%w: threshold must be within [%.1f, %.1f]",
				domain.ErrInvalidInput, domain.MinThreshold, domain.MaxThreshold)
		}
	case keyNLPModel:
		if m := value.(string); m != domain.LanguageModelFrench && m != domain.LanguageModelNone {
			return fmt.Errorf("%w: nlp.model must be %q or %q",
				domain.ErrInvalidInput, domain.LanguageModelFrench, domain.LanguageModelNone)
		}
	case keyLLMTemperature:
		if t := value.(float64); t < 0 || t > 2 {
			return fmt.Errorf("%w: temperature must be within [0, 2]", domain.ErrInvalidInput)
		}
	case keyLLMMaxTokens, keyNLPMinLength:
		if n := value.(int); n <= 0 {
			return fmt.Errorf("%w: %s must be positive", domain.ErrInvalidInput, key)
		}
	case keyLLMRate:
		if r := value.(float64); r < 0 {
			return fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, key)
		}
	}
	return nil
}

// Keys lists the settable config keys, sorted.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settableKeys))
	for k := range settableKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that the current settings are consistent.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !domain.ValidThreshold(settings.Matching.Threshold) {
		return fmt.Errorf("%w: matching.threshold %.2f out of range", domain.ErrInvalidInput, settings.Matching.Threshold)
	}

	llm := settings.LLM
	if llm.Provider != "" && !llm.IsConfigured() {
		switch {
		case !llm.Provider.IsValid():
			return fmt.Errorf("%w: invalid LLM provider: %s", domain.ErrInvalidInput, llm.Provider)
		case llm.Provider.RequiresAPIKey() && llm.APIKey == "":
			return fmt.Errorf("LLM provider %q requires an API key", llm.Provider.Description())
		case llm.Provider.RequiresEndpoint() && llm.BaseURL == "":
			return fmt.Errorf("LLM provider %q requires an endpoint", llm.Provider.Description())
		}
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
func (s *SettingsService) ValidateLLMConfig() error {
	if s.aiValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	if !settings.LLM.IsConfigured() {
		return fmt.Errorf("%w: no provider configured", domain.ErrLLMUnavailable)
	}
	return s.aiValidator.ValidateLLM(&settings.LLM)
}

// GetPipelineConfig returns the cleaning pipeline configuration.
func (s *SettingsService) GetPipelineConfig() domain.PipelineConfig {
	settings, err := s.Get()
	if err != nil {
		return domain.DefaultPipelineConfig(0)
	}
	return domain.DefaultPipelineConfig(settings.NLP.MinWordLength)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getProvider(key string, defaultVal domain.AIProvider) domain.AIProvider {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	provider := domain.AIProvider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}

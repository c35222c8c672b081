package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driven/storage/memory"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
)

type mockAIValidator struct {
	err    error
	called *domain.LLMSettings
}

func (m *mockAIValidator) ValidateLLM(config *domain.LLMSettings) error {
	m.called = config
	return m.err
}

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.LLM.Provider, settings.LLM.Provider)
	assert.Equal(t, defaults.LLM.Temperature, settings.LLM.Temperature)
	assert.Equal(t, defaults.LLM.MaxTokens, settings.LLM.MaxTokens)
	assert.Equal(t, defaults.LLM.APIVersion, settings.LLM.APIVersion)
	assert.Equal(t, defaults.NLP.Model, settings.NLP.Model)
	assert.Equal(t, defaults.Matching.Threshold, settings.Matching.Threshold)
	assert.Zero(t, settings.Generation.Seed)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("llm.provider", "azure")
	_ = store.Set("llm.model", "my-deployment")
	_ = store.Set("llm.base_url", "https://example.openai.azure.com")
	_ = store.Set("matching.threshold", 0.8)
	_ = store.Set("nlp.model", "none")
	_ = store.Set("generation.seed", 42)

	service := NewSettingsService(store, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderAzure, settings.LLM.Provider)
	assert.Equal(t, "my-deployment", settings.LLM.Model)
	assert.Equal(t, "https://example.openai.azure.com", settings.LLM.BaseURL)
	assert.InDelta(t, 0.8, settings.Matching.Threshold, 1e-9)
	assert.False(t, settings.NLP.Enabled())
	assert.Equal(t, int64(42), settings.Generation.Seed)
}

func TestSettingsService_Get_InvalidProviderReturnsDefault(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("llm.provider", "invalid_provider")

	service := NewSettingsService(store, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings().LLM.Provider, settings.LLM.Provider)
}

func TestSettingsService_Get_DefaultModelForProvider(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("llm.provider", "ollama")

	settings, err := NewSettingsService(store, nil).Get()

	require.NoError(t, err)
	assert.Equal(t, "llama3.2", settings.LLM.Model)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	settings := domain.DefaultAppSettings()
	settings.LLM.Provider = domain.AIProviderOpenAI
	settings.LLM.Model = "gpt-4o-mini"
	settings.LLM.APIKey = "sk-test"
	settings.Matching.Threshold = 0.5

	require.NoError(t, service.Save(&settings))

	assert.Equal(t, "openai", store.GetString("llm.provider"))
	assert.Equal(t, "gpt-4o-mini", store.GetString("llm.model"))
	assert.Equal(t, "sk-test", store.GetString("llm.api_key"))
	assert.InDelta(t, 0.5, store.GetFloat("matching.threshold"), 1e-9)
}

func TestSettingsService_Save_EmptyKeyKeepsStoredKey(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("llm.api_key", "sk-existing")
	service := NewSettingsService(store, nil)

	settings := domain.DefaultAppSettings()
	require.NoError(t, service.Save(&settings))

	assert.Equal(t, "sk-existing", store.GetString("llm.api_key"))
}

func TestSettingsService_SetLLMProvider_Azure(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	err := service.SetLLMProvider(domain.AIProviderAzure, "gpt4-deploy", "key", "https://res.openai.azure.com")

	require.NoError(t, err)
	settings, _ := service.Get()
	assert.Equal(t, domain.AIProviderAzure, settings.LLM.Provider)
	assert.Equal(t, "gpt4-deploy", settings.LLM.Model)
	assert.Equal(t, "https://res.openai.azure.com", settings.LLM.BaseURL)
	assert.True(t, settings.LLM.IsConfigured())
}

func TestSettingsService_SetLLMProvider_AzureRequiresEndpoint(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(), nil)

	err := service.SetLLMProvider(domain.AIProviderAzure, "dep", "key", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "endpoint")
}

func TestSettingsService_SetLLMProvider_Ollama(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NoError(t, service.SetLLMProvider(domain.AIProviderOllama, "", "", ""))

	settings, _ := service.Get()
	assert.Equal(t, "llama3.2", settings.LLM.Model)
	assert.Equal(t, "http://localhost:11434", settings.LLM.BaseURL)
}

func TestSettingsService_SetLLMProvider_RequiresAPIKey(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(), nil)

	err := service.SetLLMProvider(domain.AIProviderOpenAI, "", "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key required")
}

func TestSettingsService_SetLLMProvider_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(), nil)

	err := service.SetLLMProvider("bogus", "", "", "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_SetValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{"threshold", "matching.threshold", "0.75", false},
		{"threshold below range", "matching.threshold", "0.05", true},
		{"threshold above range", "matching.threshold", "1.5", true},
		{"threshold not a number", "matching.threshold", "high", true},
		{"seed", "generation.seed", "7", false},
		{"seed not an integer", "generation.seed", "7.5", true},
		{"nlp model none", "nlp.model", "none", false},
		{"nlp model unknown", "nlp.model", "de", true},
		{"provider", "llm.provider", "anthropic", false},
		{"provider unknown", "llm.provider", "bogus", true},
		{"temperature", "llm.temperature", "0.2", false},
		{"temperature too hot", "llm.temperature", "3", true},
		{"max tokens zero", "llm.max_tokens", "0", true},
		{"unknown key", "search.mode", "hybrid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store, nil)

			err := service.SetValue(tt.key, tt.value)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				_, exists := store.Get(tt.key)
				assert.False(t, exists)
				return
			}
			require.NoError(t, err)
			_, exists := store.Get(tt.key)
			assert.True(t, exists)
		})
	}
}

func TestSettingsService_SetValue_TypedStorage(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NoError(t, service.SetValue("matching.threshold", "0.7"))
	require.NoError(t, service.SetValue("nlp.min_word_length", "4"))

	assert.InDelta(t, 0.7, store.GetFloat("matching.threshold"), 1e-9)
	assert.Equal(t, 4, store.GetInt("nlp.min_word_length"))
}

func TestSettingsService_Keys(t *testing.T) {
	keys := NewSettingsService(memory.NewConfigStore(), nil).Keys()

	assert.Contains(t, keys, "llm.api_key")
	assert.Contains(t, keys, "matching.threshold")
	assert.IsIncreasing(t, keys)
}

func TestSettingsService_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		service := NewSettingsService(memory.NewConfigStore(), nil)
		assert.NoError(t, service.Validate())
	})

	t.Run("azure without key", func(t *testing.T) {
		store := memory.NewConfigStore()
		_ = store.Set("llm.provider", "azure")
		_ = store.Set("llm.base_url", "https://res.openai.azure.com")

		err := NewSettingsService(store, nil).Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires an API key")
	})

	t.Run("threshold out of range", func(t *testing.T) {
		store := memory.NewConfigStore()
		_ = store.Set("matching.threshold", 0.01)

		err := NewSettingsService(store, nil).Validate()

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(), nil)

	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}

func TestSettingsService_ValidateLLMConfig(t *testing.T) {
	t.Run("nil validator", func(t *testing.T) {
		service := NewSettingsService(memory.NewConfigStore(), nil)
		assert.NoError(t, service.ValidateLLMConfig())
	})

	t.Run("unconfigured", func(t *testing.T) {
		service := NewSettingsService(memory.NewConfigStore(), &mockAIValidator{})
		assert.ErrorIs(t, service.ValidateLLMConfig(), domain.ErrLLMUnavailable)
	})

	t.Run("delegates to validator", func(t *testing.T) {
		store := memory.NewConfigStore()
		validator := &mockAIValidator{err: errors.New("401 unauthorized")}
		service := NewSettingsService(store, validator)
		require.NoError(t, service.SetLLMProvider(domain.AIProviderOpenAI, "", "sk-test", ""))

		err := service.ValidateLLMConfig()

		require.Error(t, err)
		require.NotNil(t, validator.called)
		assert.Equal(t, "sk-test", validator.called.APIKey)
	})
}

func TestSettingsService_GetPipelineConfig(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("nlp.min_word_length", 5)

	cfg := NewSettingsService(store, nil).GetPipelineConfig()

	assert.Equal(t, []string{"normalise", "lemmatise"}, cfg.Processors)
	assert.Equal(t, 5, cfg.GetProcessorConfig("lemmatise")["min_length"])
}

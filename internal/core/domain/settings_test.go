package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAIProvider_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		provider AIProvider
		expected bool
	}{
		{"azure is valid", AIProviderAzure, true},
		{"openai is valid", AIProviderOpenAI, true},
		{"ollama is valid", AIProviderOllama, true},
		{"anthropic is valid", AIProviderAnthropic, true},
		{"empty is invalid", AIProvider(""), false},
		{"unknown is invalid", AIProvider("mistral"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.provider.IsValid())
		})
	}
}

func TestAIProvider_Requirements(t *testing.T) {
	assert.True(t, AIProviderAzure.RequiresAPIKey())
	assert.True(t, AIProviderAzure.RequiresEndpoint())
	assert.True(t, AIProviderOpenAI.RequiresAPIKey())
	assert.False(t, AIProviderOpenAI.RequiresEndpoint())
	assert.False(t, AIProviderOllama.RequiresAPIKey())
	assert.True(t, AIProviderOllama.IsLocal())
	assert.Equal(t, unknownDescription, AIProvider("x").Description())
}

func TestLLMSettings_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		settings LLMSettings
		expected bool
	}{
		{"empty", LLMSettings{}, false},
		{"ollama without key", LLMSettings{Provider: AIProviderOllama}, true},
		{"openai without key", LLMSettings{Provider: AIProviderOpenAI}, false},
		{"openai with key", LLMSettings{Provider: AIProviderOpenAI, APIKey: "sk"}, true},
		{"azure without endpoint", LLMSettings{Provider: AIProviderAzure, APIKey: "k"}, false},
		{"azure complete", LLMSettings{Provider: AIProviderAzure, APIKey: "k", BaseURL: "https://x.openai.azure.com"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.settings.IsConfigured())
		})
	}
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.False(t, s.LLM.IsConfigured())
	assert.InDelta(t, 0.7, s.LLM.Temperature, 1e-9)
	assert.Equal(t, 1000, s.LLM.MaxTokens)
	assert.Equal(t, "2024-02-15-preview", s.LLM.APIVersion)
	assert.True(t, s.NLP.Enabled())
	assert.Equal(t, 3, s.NLP.MinWordLength)
	assert.InDelta(t, 0.6, s.Matching.Threshold, 1e-9)
}

func TestNLPSettings_Enabled(t *testing.T) {
	assert.False(t, NLPSettings{}.Enabled())
	assert.False(t, NLPSettings{Model: LanguageModelNone}.Enabled())
	assert.True(t, NLPSettings{Model: LanguageModelFrench}.Enabled())
}

func TestDefaultLLMModels_CoverAllProviders(t *testing.T) {
	models := DefaultLLMModels()
	for _, p := range AllLLMProviders() {
		assert.NotEmpty(t, models[p], "provider %s", p)
	}
}

// Package ai provides factory functions for creating text-generation
// service adapters from settings.
package ai

import (
	"context"
	"fmt"
	"time"

	anthropicllm "github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driven/llm/anthropic"
	azurellm "github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driven/llm/azure"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driven/llm/limited"
	ollamallm "github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driven/llm/ollama"
	openaillm "github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driven/llm/openai"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// CreateAndValidateLLMService creates an LLM service and validates connectivity.
// An unconfigured provider yields (nil, nil): the pipeline then runs in
// heuristic mode.
func CreateAndValidateLLMService(ctx context.Context, settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	svc, err := CreateLLMService(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'testgen settings wizard' to fix",
			domain.ErrLLMUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := svc.Ping(pingCtx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'testgen settings wizard' to fix",
			domain.ErrLLMUnavailable, err)
	}

	return svc, nil
}

// ValidateLLMConfig pings the provider of settings; see ConfigValidator.
func ValidateLLMConfig(settings *domain.LLMSettings) error {
	return NewConfigValidator().ValidateLLM(settings)
}

// CreateLLMService creates the appropriate LLM service based on settings,
// wrapped with the configured rate limit and generation defaults.
// Returns nil if the provider is not configured.
func CreateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	var (
		svc driven.LLMService
		err error
	)
	switch settings.Provider {
	case domain.AIProviderAzure:
		svc, err = createAzureLLM(settings)

	case domain.AIProviderOllama:
		svc = createOllamaLLM(settings)

	case domain.AIProviderOpenAI:
		svc, err = createOpenAILLM(settings)

	case domain.AIProviderAnthropic:
		svc, err = createAnthropicLLM(settings)

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", settings.Provider)
	}
	if err != nil {
		return nil, err
	}

	return limited.Wrap(svc, limited.Config{
		RequestsPerSecond: settings.RequestsPerSecond,
		Burst:             1,
		Defaults: driven.GenerateOptions{
			MaxTokens:   settings.MaxTokens,
			Temperature: settings.Temperature,
		},
	}), nil
}

// createAzureLLM creates an Azure OpenAI deployment service. The model
// field names the deployment.
func createAzureLLM(settings *domain.LLMSettings) (driven.LLMService, error) {
	return azurellm.NewLLMService(azurellm.LLMConfig{
		Endpoint:   settings.BaseURL,
		APIKey:     settings.APIKey,
		Deployment: settings.Model,
		APIVersion: settings.APIVersion,
	})
}

// createOllamaLLM creates an Ollama LLM service.
func createOllamaLLM(settings *domain.LLMSettings) driven.LLMService {
	return ollamallm.NewLLMService(ollamallm.LLMConfig{
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})
}

// createOpenAILLM creates an OpenAI LLM service.
func createOpenAILLM(settings *domain.LLMSettings) (driven.LLMService, error) {
	return openaillm.NewLLMService(openaillm.LLMConfig{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})
}

// createAnthropicLLM creates an Anthropic LLM service.
func createAnthropicLLM(settings *domain.LLMSettings) (driven.LLMService, error) {
	return anthropicllm.NewLLMService(anthropicllm.Config{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})
}

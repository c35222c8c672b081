package ai

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
)

func TestConfigValidator_Unconfigured(t *testing.T) {
	v := NewConfigValidator()
	assert.NoError(t, v.ValidateLLM(nil))
	assert.NoError(t, v.ValidateLLM(&domain.LLMSettings{Provider: domain.AIProviderOpenAI}))
}

func TestConfigValidator_Ollama(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"models":[{"name":"mistral:latest"}]}`))
	}))
	defer server.Close()

	v := NewConfigValidator()

	assert.NoError(t, v.ValidateLLM(&domain.LLMSettings{
		Provider: domain.AIProviderOllama, BaseURL: server.URL, Model: "mistral",
	}))

	err := v.ValidateLLM(&domain.LLMSettings{
		Provider: domain.AIProviderOllama, BaseURL: server.URL, Model: "phi3",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ollama (phi3)")
}

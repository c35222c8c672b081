package azure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
)

func TestNewLLMService_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  LLMConfig
	}{
		{"missing key", LLMConfig{Endpoint: "https://x", Deployment: "d"}},
		{"missing endpoint", LLMConfig{APIKey: "k", Deployment: "d"}},
		{"missing deployment", LLMConfig{APIKey: "k", Endpoint: "https://x"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLLMService(tc.cfg)
			assert.Error(t, err)
		})
	}
}

func TestGenerate_UsesDeploymentURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/openai/deployments/gpt-4o/chat/completions", r.URL.Path)
		assert.Equal(t, DefaultAPIVersion, r.URL.Query().Get("api-version"))
		assert.Equal(t, "secret", r.Header.Get("api-key"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Vérifier que le montant est positif."}}]}`))
	}))
	defer server.Close()

	svc, err := NewLLMService(LLMConfig{
		Endpoint:   server.URL + "/",
		APIKey:     "secret",
		Deployment: "gpt-4o",
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", svc.ModelName())

	out, err := svc.Generate(context.Background(), "prompt", driven.GenerateOptions{MaxTokens: 200})
	require.NoError(t, err)
	assert.Equal(t, "Vérifier que le montant est positif.", out)
}

func TestPing_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Access denied due to invalid subscription key."}}`))
	}))
	defer server.Close()

	svc, err := NewLLMService(LLMConfig{Endpoint: server.URL, APIKey: "bad", Deployment: "d", APIVersion: "2024-06-01"})
	require.NoError(t, err)

	err = svc.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "azure")
	assert.Contains(t, err.Error(), "invalid subscription key")
}

// Package azure provides an LLM service adapter for Azure OpenAI
// deployments.
package azure

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driven/llm/openai"
)

// DefaultAPIVersion is used when no api-version is configured.
const DefaultAPIVersion = "2024-02-15-preview"

// LLMConfig holds configuration for an Azure OpenAI deployment.
type LLMConfig struct {
	// Endpoint is the resource URL, e.g. https://my-res.openai.azure.com.
	Endpoint string

	// APIKey is sent in the api-key header.
	APIKey string

	// Deployment is the deployment name (DEPLOYMENT_NAME).
	Deployment string

	// APIVersion is the api-version query parameter.
	APIVersion string

	Timeout time.Duration
}

// NewLLMService creates an Azure OpenAI LLM service. Azure exposes no
// cheap listing endpoint per deployment, so Ping sends a five-token
// completion.
func NewLLMService(cfg LLMConfig) (*openai.LLMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("azure: API key is required")
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("azure: endpoint is required")
	}
	if cfg.Deployment == "" {
		return nil, fmt.Errorf("azure: deployment name is required")
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}

	completions := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(cfg.Endpoint, "/"),
		url.PathEscape(cfg.Deployment),
		url.QueryEscape(cfg.APIVersion),
	)

	return openai.NewCompatibleService(openai.Endpoint{
		Provider:       "azure",
		CompletionsURL: completions,
		AuthHeader:     "api-key",
		AuthValue:      cfg.APIKey,
		Timeout:        cfg.Timeout,
	}, cfg.Deployment), nil
}

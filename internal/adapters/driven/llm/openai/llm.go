// Package openai provides an LLM service adapter for the OpenAI chat
// completions API and wire-compatible endpoints such as Azure OpenAI.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

// Default configuration values.
const (
	DefaultBaseURL    = "https://api.openai.com/v1"
	DefaultLLMModel   = "gpt-4o-mini"
	DefaultLLMTimeout = 120 * time.Second
)

// LLMConfig holds configuration for the OpenAI LLM service.
type LLMConfig struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.openai.com/v1).
	BaseURL string

	// Model is the LLM model to use (default: gpt-4o-mini).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// Endpoint describes where and how a chat completions request is sent.
// It lets wire-compatible providers reuse this adapter.
type Endpoint struct {
	// Provider prefixes error messages ("openai", "azure").
	Provider string

	// CompletionsURL receives POST /chat/completions bodies.
	CompletionsURL string

	// PingURL, when set, is probed with GET. Otherwise Ping sends a
	// minimal completion.
	PingURL string

	// AuthHeader and AuthValue carry the credential.
	AuthHeader string
	AuthValue  string

	// Model is sent in the request body when non-empty and reported by
	// ModelName.
	Model string

	Timeout time.Duration
}

// LLMService provides LLM operations over a chat completions endpoint.
type LLMService struct {
	client   *http.Client
	endpoint Endpoint
	name     string
}

// chatCompletionRequest is the /chat/completions request format.
type chatCompletionRequest struct {
	Model       string              `json:"model,omitempty"`
	Messages    []chatCompletionMsg `json:"messages"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
	Temperature float64             `json:"temperature,omitempty"`
	Stop        []string            `json:"stop,omitempty"`
}

type chatCompletionMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse is the /chat/completions response format.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewLLMService creates a new OpenAI LLM service.
func NewLLMService(cfg LLMConfig) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultLLMModel
	}
	base := strings.TrimRight(cfg.BaseURL, "/")

	return NewCompatibleService(Endpoint{
		Provider:       "openai",
		CompletionsURL: base + "/chat/completions",
		PingURL:        base + "/models",
		AuthHeader:     "Authorization",
		AuthValue:      "Bearer " + cfg.APIKey,
		Model:          cfg.Model,
		Timeout:        cfg.Timeout,
	}, cfg.Model), nil
}

// NewCompatibleService creates a service for any endpoint speaking the
// chat completions protocol. name is what ModelName reports.
func NewCompatibleService(ep Endpoint, name string) *LLMService {
	if ep.Timeout == 0 {
		ep.Timeout = DefaultLLMTimeout
	}
	return &LLMService{
		client:   &http.Client{Timeout: ep.Timeout},
		endpoint: ep,
		name:     name,
	}
}

// Generate sends prompt as a single user message.
func (s *LLMService) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	reqBody := chatCompletionRequest{
		Model:    s.endpoint.Model,
		Messages: []chatCompletionMsg{{Role: "user", Content: prompt}},
	}
	if opts.MaxTokens > 0 {
		reqBody.MaxTokens = opts.MaxTokens
	}
	if opts.Temperature > 0 {
		reqBody.Temperature = opts.Temperature
	}
	if len(opts.StopWords) > 0 {
		reqBody.Stop = opts.StopWords
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint.CompletionsURL, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(s.endpoint.AuthHeader, s.endpoint.AuthValue)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("%s error (status %d): %s", s.endpoint.Provider, resp.StatusCode, string(body))
		}
		return "", fmt.Errorf("decode response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("%s error: %s", s.endpoint.Provider, chatResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s error (status %d): %s", s.endpoint.Provider, resp.StatusCode, string(body))
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%s: no response choices returned", s.endpoint.Provider)
	}

	return chatResp.Choices[0].Message.Content, nil
}

// ModelName returns the name of the model or deployment being used.
func (s *LLMService) ModelName() string {
	return s.name
}

// Ping validates the service is reachable. With a PingURL it checks that
// endpoint; otherwise it runs a five-token completion.
func (s *LLMService) Ping(ctx context.Context) error {
	if s.endpoint.PingURL == "" {
		if _, err := s.Generate(ctx, "Ping", driven.GenerateOptions{MaxTokens: 5}); err != nil {
			return fmt.Errorf("%s: ping failed: %w", s.endpoint.Provider, err)
		}
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint.PingURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("%s: failed to create ping request: %w", s.endpoint.Provider, err)
	}
	req.Header.Set(s.endpoint.AuthHeader, s.endpoint.AuthValue)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: ping failed: %w", s.endpoint.Provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%s: API returned status %d (failed to read body: %w)", s.endpoint.Provider, resp.StatusCode, err)
		}
		return fmt.Errorf("%s: API returned status %d: %s", s.endpoint.Provider, resp.StatusCode, string(body))
	}
	return nil
}

// Close releases resources.
func (s *LLMService) Close() error {
	return nil
}

package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
)

func TestParseSessionURI(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		wantID   string
		wantPart string
	}{
		{"session", "testgen://sessions/abc", "abc", ""},
		{"session part", "testgen://sessions/abc/rules", "abc", "rules"},
		{"too deep", "testgen://sessions/abc/rules/1", "", ""},
		{"wrong scheme", "other://sessions/abc", "", ""},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, part := parseSessionURI(tt.uri)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantPart, part)
		})
	}
}

// Helper to create a ReadResourceRequest for testing.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func populatedWorkbench() *mockWorkbench {
	wb := newMockWorkbench()
	wb.sessions["abc"] = &domain.Session{
		ID:       "abc",
		Document: &domain.Document{Title: "cahier des charges", Content: "Le client doit payer."},
		Rules:    []string{"Le client doit payer."},
		ControlPoints: []domain.ControlPoint{
			{Text: "Vérifier que Le client doit payer.", Origin: domain.OriginGenerated},
		},
	}
	return wb
}

func TestServer_handleSessionResource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, populatedWorkbench())

	t.Run("returns summary", func(t *testing.T) {
		result, err := server.handleSessionResource(ctx, makeReadResourceRequest("testgen://sessions/abc"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, `"document": "cahier des charges"`)
		assert.Contains(t, result.Contents[0].Text, `"rules": 1`)
		assert.Contains(t, result.Contents[0].Text, `"test_cases": 0`)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := server.handleSessionResource(ctx, makeReadResourceRequest("testgen://sessions/nope"))
		assert.Error(t, err)
	})
}

func TestServer_handleSessionPartResource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, populatedWorkbench())

	t.Run("document text", func(t *testing.T) {
		result, err := server.handleSessionPartResource(ctx, makeReadResourceRequest("testgen://sessions/abc/document"))

		require.NoError(t, err)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Equal(t, "Le client doit payer.", result.Contents[0].Text)
	})

	t.Run("control points", func(t *testing.T) {
		result, err := server.handleSessionPartResource(ctx, makeReadResourceRequest("testgen://sessions/abc/control_points"))

		require.NoError(t, err)
		assert.Contains(t, result.Contents[0].Text, `"origin": "generated"`)
	})

	t.Run("empty list renders as array", func(t *testing.T) {
		result, err := server.handleSessionPartResource(ctx, makeReadResourceRequest("testgen://sessions/abc/test_cases"))

		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("unknown part", func(t *testing.T) {
		_, err := server.handleSessionPartResource(ctx, makeReadResourceRequest("testgen://sessions/abc/matrix"))
		assert.Error(t, err)
	})
}

type stubSettings struct {
	driving.SettingsService
	settings domain.AppSettings
}

func (s *stubSettings) Get() (*domain.AppSettings, error) {
	return &s.settings, nil
}

func TestServer_handleSettingsResource(t *testing.T) {
	settings := domain.DefaultAppSettings()
	settings.LLM.Provider = domain.AIProviderAzure
	settings.LLM.Model = "gpt-4o"
	settings.LLM.APIKey = "secret-key"
	settings.LLM.BaseURL = "https://example.openai.azure.com"

	server, err := NewServer(&Ports{Workbench: newMockWorkbench(), Settings: &stubSettings{settings: settings}})
	require.NoError(t, err)

	result, err := server.handleSettingsResource(context.Background(), makeReadResourceRequest(settingsURI))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	text := result.Contents[0].Text
	assert.Contains(t, text, `"llm_provider": "azure"`)
	assert.Contains(t, text, `"llm_configured": true`)
	assert.Contains(t, text, `"threshold": 0.6`)
	assert.NotContains(t, text, "secret-key")
}

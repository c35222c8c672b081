package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for testgen resources.
	uriScheme = "testgen://"
)

// Parts of a session exposed as resources.
const (
	partDocument      = "document"
	partRules         = "rules"
	partControlPoints = "control_points"
	partTestCases     = "test_cases"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Template for session summaries.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sessions/{sessionId}",
		Name:        "session",
		Description: "Summary of a session: document title and stage counts",
		MIMEType:    "application/json",
	}, s.handleSessionResource)

	// Template for session outputs.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sessions/{sessionId}/{part}",
		Name:        "session-part",
		Description: "One output of a session: document (text), rules, control_points or test_cases (JSON)",
		MIMEType:    "application/json",
	}, s.handleSessionPartResource)

	if s.ports.Settings != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         settingsURI,
			Name:        "settings",
			Description: "Capabilities in use: text generation provider, linguistic model, matching threshold",
			MIMEType:    "application/json",
		}, s.handleSettingsResource)
	}
}

const settingsURI = uriScheme + "settings"

// settingsSummary never carries the API key.
type settingsSummary struct {
	LLMProvider   string  `json:"llm_provider,omitempty"`
	LLMModel      string  `json:"llm_model,omitempty"`
	LLMConfigured bool    `json:"llm_configured"`
	LanguageModel string  `json:"language_model"`
	Threshold     float64 `json:"threshold"`
}

func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}
	return jsonResult(req.Params.URI, settingsSummary{
		LLMProvider:   string(settings.LLM.Provider),
		LLMModel:      settings.LLM.Model,
		LLMConfigured: settings.LLM.IsConfigured(),
		LanguageModel: settings.NLP.Model,
		Threshold:     settings.Matching.Threshold,
	})
}

// sessionSummary is the JSON shape of a session resource.
type sessionSummary struct {
	ID            string `json:"id"`
	Document      string `json:"document,omitempty"`
	Rules         int    `json:"rules"`
	Imported      int    `json:"imported_control_points"`
	ControlPoints int    `json:"control_points"`
	TestCases     int    `json:"test_cases"`
	Analysed      bool   `json:"analysed"`
	Matched       bool   `json:"matched"`
}

// handleSessionResource returns the summary of a session.
func (s *Server) handleSessionResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id, part := parseSessionURI(req.Params.URI)
	if id == "" || part != "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	session, err := s.session(ctx, req.Params.URI, id)
	if err != nil {
		return nil, err
	}

	summary := sessionSummary{
		ID:            session.ID,
		Rules:         len(session.Rules),
		Imported:      len(session.Imported),
		ControlPoints: len(session.ControlPoints),
		TestCases:     len(session.TestCases),
		Analysed:      session.Analysis != nil,
		Matched:       session.Matrix != nil,
	}
	if session.Document != nil {
		summary.Document = session.Document.Title
	}
	return jsonResult(req.Params.URI, summary)
}

// handleSessionPartResource returns one output of a session.
func (s *Server) handleSessionPartResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id, part := parseSessionURI(req.Params.URI)
	if id == "" || part == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	session, err := s.session(ctx, req.Params.URI, id)
	if err != nil {
		return nil, err
	}

	switch part {
	case partDocument:
		if session.Document == nil {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "text/plain",
				Text:     session.Document.Content,
			}},
		}, nil
	case partRules:
		return jsonResult(req.Params.URI, nonNil(session.Rules))
	case partControlPoints:
		return jsonResult(req.Params.URI, nonNil(session.ControlPoints))
	case partTestCases:
		return jsonResult(req.Params.URI, nonNil(session.TestCases))
	default:
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
}

func (s *Server) session(ctx context.Context, uri, id string) (*domain.Session, error) {
	session, err := s.ports.Workbench.Session(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(uri)
	}
	if err != nil {
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return session, nil
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// nonNil renders empty lists as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// parseSessionURI splits testgen://sessions/{id}[/{part}].
func parseSessionURI(uri string) (id, part string) {
	const prefix = uriScheme + "sessions/"

	if !strings.HasPrefix(uri, prefix) {
		return "", ""
	}

	rest := strings.TrimPrefix(uri, prefix)
	id, part, _ = strings.Cut(rest, "/")
	if strings.Contains(part, "/") {
		return "", ""
	}
	return id, part
}

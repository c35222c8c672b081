package mcp

import (
	"context"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/normalisers"
)

// SessionInput identifies the session a tool works on.
type SessionInput struct {
	SessionID string `json:"session_id" jsonschema:"the session returned by load_document"`
}

// LoadDocumentInput is the input schema for the load_document tool.
type LoadDocumentInput struct {
	SessionID string `json:"session_id,omitempty" jsonschema:"an existing session to reuse; a new one is created when empty"`
	Path      string `json:"path" jsonschema:"path of a PDF, Word (.docx) or text requirement document"`
}

// LoadDocumentOutput is the output schema for the load_document tool.
type LoadDocumentOutput struct {
	SessionID  string `json:"session_id"`
	Title      string `json:"title"`
	Characters int    `json:"characters"`
	Preview    string `json:"preview"`
}

// AnalyzeInput is the input schema for the analyze_text tool.
type AnalyzeInput struct {
	SessionID string `json:"session_id" jsonschema:"the session returned by load_document"`
	Top       int    `json:"top,omitempty" jsonschema:"number of terms to return, 5 to 50 (default 20)"`
}

// AnalyzeOutput is the output schema for the analyze_text tool.
type AnalyzeOutput struct {
	WordCount   int                    `json:"word_count"`
	Distinct    int                    `json:"distinct_terms"`
	Frequencies []domain.TermFrequency `json:"frequencies"`
}

// ExtractRulesInput is the input schema for the extract_rules tool.
type ExtractRulesInput struct {
	SessionID string `json:"session_id" jsonschema:"the session returned by load_document"`
	Assisted  bool   `json:"assisted,omitempty" jsonschema:"delegate extraction to the text generation service"`
}

// ImportInput is the input schema for the import_control_points tool.
type ImportInput struct {
	SessionID string `json:"session_id" jsonschema:"the session returned by load_document"`
	Path      string `json:"path" jsonschema:"path of a document listing existing control points"`
}

// ImportOutput is the output schema for the import_control_points tool.
type ImportOutput struct {
	ControlPoints []domain.ControlPoint `json:"control_points"`
	Count         int                   `json:"count"`
}

// MatchInput is the input schema for the match_rules tool.
type MatchInput struct {
	SessionID string  `json:"session_id" jsonschema:"the session returned by load_document"`
	Threshold float64 `json:"threshold,omitempty" jsonschema:"similarity from which a rule counts as covered, 0.1 to 1.0 (default from settings)"`
}

// BuildInput is the input schema for the build_control_points tool.
type BuildInput struct {
	SessionID string  `json:"session_id" jsonschema:"the session returned by load_document"`
	Threshold float64 `json:"threshold,omitempty" jsonschema:"similarity from which a rule counts as covered, 0.1 to 1.0 (default from settings)"`
	Assisted  bool    `json:"assisted,omitempty" jsonschema:"phrase control points with the text generation service"`
}

// GenerateInput is the input schema for the generate_test_cases tool.
type GenerateInput struct {
	SessionID string `json:"session_id" jsonschema:"the session returned by load_document"`
	Assisted  bool   `json:"assisted,omitempty" jsonschema:"write test cases with the text generation service"`
}

// ExportInput is the input schema for the export tool.
type ExportInput struct {
	SessionID string `json:"session_id" jsonschema:"the session returned by load_document"`
	Kind      string `json:"kind" jsonschema:"one of rules, control_points, test_cases, wordcloud"`
	Path      string `json:"path,omitempty" jsonschema:"destination file (default regles_gestion.docx, points_de_controle.docx, cas_de_test.docx or wordcloud.png)"`
}

// ExportOutput is the output schema for the export tool.
type ExportOutput struct {
	Path     string `json:"path"`
	MIMEType string `json:"mime_type"`
	Bytes    int    `json:"bytes"`
}

// SessionSummary describes one open session.
type SessionSummary struct {
	SessionID     string `json:"session_id"`
	Document      string `json:"document,omitempty"`
	Rules         int    `json:"rules"`
	ControlPoints int    `json:"control_points"`
	TestCases     int    `json:"test_cases"`
	UpdatedAt     string `json:"updated_at"`
}

// ListSessionsInput takes no arguments.
type ListSessionsInput struct{}

// ListSessionsOutput is the output schema for the list_sessions tool.
type ListSessionsOutput struct {
	Sessions []SessionSummary `json:"sessions"`
}

// CloseSessionOutput is the output schema for the close_session tool.
type CloseSessionOutput struct {
	Closed bool `json:"closed"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "load_document",
		Description: "Extract the text of a requirement document into a session",
	}, s.handleLoadDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_text",
		Description: "Clean the document text and return its most frequent terms",
	}, s.handleAnalyze)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_rules",
		Description: "Extract the business rules of the session document",
	}, s.handleExtractRules)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "import_control_points",
		Description: "Read existing control points (PDC) from an auxiliary document",
	}, s.handleImport)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "match_rules",
		Description: "Score every rule against every imported control point (TF-IDF cosine similarity)",
	}, s.handleMatch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "build_control_points",
		Description: "Keep imported control points and generate one for every uncovered rule",
	}, s.handleBuild)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_test_cases",
		Description: "Generate one test case per control point",
	}, s.handleGenerate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export",
		Description: "Write rules, control points or test cases as a Word document, or the word cloud as PNG",
	}, s.handleExport)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_sessions",
		Description: "List open sessions with the size of each pipeline stage",
	}, s.handleListSessions)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "close_session",
		Description: "Discard a session and everything derived from its document",
	}, s.handleCloseSession)
}

func (s *Server) handleLoadDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LoadDocumentInput,
) (*mcp.CallToolResult, LoadDocumentOutput, error) {
	raw, err := normalisers.ReadFile(input.Path)
	if err != nil {
		return nil, LoadDocumentOutput{}, err
	}

	sessionID := input.SessionID
	if sessionID == "" {
		session, err := s.ports.Workbench.NewSession(ctx)
		if err != nil {
			return nil, LoadDocumentOutput{}, err
		}
		sessionID = session.ID
	}
	doc, err := s.ports.Workbench.LoadDocument(ctx, sessionID, raw)
	if err != nil {
		return nil, LoadDocumentOutput{}, err
	}

	return nil, LoadDocumentOutput{
		SessionID:  sessionID,
		Title:      doc.Title,
		Characters: utf8.RuneCountInString(doc.Content),
		Preview:    doc.Preview(),
	}, nil
}

func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	top := input.Top
	if top == 0 {
		top = domain.DefaultTopWords
	}
	if top < domain.MinTopWords || top > domain.MaxTopWords {
		return nil, AnalyzeOutput{}, fmt.Errorf("%w: top must be within %d-%d",
			domain.ErrInvalidInput, domain.MinTopWords, domain.MaxTopWords)
	}

	analysis, err := s.ports.Workbench.Analyze(ctx, input.SessionID)
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	return nil, AnalyzeOutput{
		WordCount:   analysis.WordCount,
		Distinct:    len(analysis.Frequencies),
		Frequencies: analysis.Top(top),
	}, nil
}

func (s *Server) handleExtractRules(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractRulesInput,
) (*mcp.CallToolResult, driving.RulesResult, error) {
	result, err := s.ports.Workbench.ExtractRules(ctx, input.SessionID, driving.ExtractOptions{Assisted: input.Assisted})
	if err != nil {
		return nil, driving.RulesResult{}, err
	}
	return nil, *result, nil
}

func (s *Server) handleImport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ImportInput,
) (*mcp.CallToolResult, ImportOutput, error) {
	raw, err := normalisers.ReadFile(input.Path)
	if err != nil {
		return nil, ImportOutput{}, err
	}
	result, err := s.ports.Workbench.ImportControlPoints(ctx, input.SessionID, raw)
	if err != nil {
		return nil, ImportOutput{}, err
	}
	return nil, ImportOutput{ControlPoints: result.ControlPoints, Count: len(result.ControlPoints)}, nil
}

func (s *Server) handleMatch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MatchInput,
) (*mcp.CallToolResult, driving.MatchResult, error) {
	result, err := s.ports.Workbench.Match(ctx, input.SessionID, input.Threshold)
	if err != nil {
		return nil, driving.MatchResult{}, err
	}
	return nil, *result, nil
}

func (s *Server) handleBuild(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BuildInput,
) (*mcp.CallToolResult, driving.ControlPointsResult, error) {
	result, err := s.ports.Workbench.BuildControlPoints(ctx, input.SessionID, driving.BuildOptions{
		Threshold: input.Threshold,
		Assisted:  input.Assisted,
	})
	if err != nil {
		return nil, driving.ControlPointsResult{}, err
	}
	return nil, *result, nil
}

func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, driving.TestCasesResult, error) {
	result, err := s.ports.Workbench.GenerateTestCases(ctx, input.SessionID, driving.GenerateOptions{Assisted: input.Assisted})
	if err != nil {
		return nil, driving.TestCasesResult{}, err
	}
	return nil, *result, nil
}

func (s *Server) handleExport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExportInput,
) (*mcp.CallToolResult, ExportOutput, error) {
	out, err := s.ports.Workbench.Export(ctx, input.SessionID, driving.ExportKind(input.Kind))
	if err != nil {
		return nil, ExportOutput{}, err
	}

	path := input.Path
	if path == "" {
		path = out.FileName
	}
	if err := s.writeFile(path, out.Content); err != nil {
		return nil, ExportOutput{}, fmt.Errorf("write %s: %w", path, err)
	}

	return nil, ExportOutput{Path: path, MIMEType: out.MIMEType, Bytes: len(out.Content)}, nil
}

func (s *Server) handleListSessions(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListSessionsInput,
) (*mcp.CallToolResult, ListSessionsOutput, error) {
	sessions, err := s.ports.Workbench.Sessions(ctx)
	if err != nil {
		return nil, ListSessionsOutput{}, err
	}

	out := ListSessionsOutput{Sessions: make([]SessionSummary, 0, len(sessions))}
	for _, session := range sessions {
		summary := SessionSummary{
			SessionID:     session.ID,
			Rules:         len(session.Rules),
			ControlPoints: len(session.ControlPoints),
			TestCases:     len(session.TestCases),
			UpdatedAt:     session.UpdatedAt.Format(time.RFC3339),
		}
		if session.Document != nil {
			summary.Document = session.Document.Title
		}
		out.Sessions = append(out.Sessions, summary)
	}
	return nil, out, nil
}

func (s *Server) handleCloseSession(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SessionInput,
) (*mcp.CallToolResult, CloseSessionOutput, error) {
	if err := s.ports.Workbench.CloseSession(ctx, input.SessionID); err != nil {
		return nil, CloseSessionOutput{}, err
	}
	return nil, CloseSessionOutput{Closed: true}, nil
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o600)
}

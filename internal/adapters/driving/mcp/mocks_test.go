package mcp

import (
	"context"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
)

// mockWorkbench is a mock implementation of driving.WorkbenchService.
type mockWorkbench struct {
	sessions map[string]*domain.Session
	err      error

	lastRaw       *domain.RawDocument
	lastExtract   driving.ExtractOptions
	lastThreshold float64
	lastBuild     driving.BuildOptions
	lastGenerate  driving.GenerateOptions
	lastExport    driving.ExportKind

	analysis *domain.Analysis
	rules    *driving.RulesResult
	match    *driving.MatchResult
	pdcs     *driving.ControlPointsResult
	cases    *driving.TestCasesResult
	export   *driving.ExportResult
}

func newMockWorkbench() *mockWorkbench {
	return &mockWorkbench{sessions: map[string]*domain.Session{}}
}

func (m *mockWorkbench) NewSession(_ context.Context) (*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := &domain.Session{ID: "session-1"}
	m.sessions[s.ID] = s
	return s, nil
}

func (m *mockWorkbench) Session(_ context.Context, id string) (*domain.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (m *mockWorkbench) Sessions(_ context.Context) ([]*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]*domain.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		result = append(result, s)
	}
	return result, nil
}

func (m *mockWorkbench) CloseSession(_ context.Context, id string) error {
	if _, ok := m.sessions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *mockWorkbench) LoadDocument(_ context.Context, _ string, raw *domain.RawDocument) (*domain.Document, error) {
	m.lastRaw = raw
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Document{Title: "exigences", Content: string(raw.Content)}, nil
}

func (m *mockWorkbench) Analyze(_ context.Context, _ string) (*domain.Analysis, error) {
	return m.analysis, m.err
}

func (m *mockWorkbench) ExtractRules(_ context.Context, _ string, opts driving.ExtractOptions) (*driving.RulesResult, error) {
	m.lastExtract = opts
	return m.rules, m.err
}

func (m *mockWorkbench) ImportControlPoints(_ context.Context, _ string, raw *domain.RawDocument) (*driving.ImportResult, error) {
	m.lastRaw = raw
	if m.err != nil {
		return nil, m.err
	}
	return &driving.ImportResult{ControlPoints: []domain.ControlPoint{
		{Text: "Vérifier le total des lignes.", Origin: domain.OriginImported},
	}}, nil
}

func (m *mockWorkbench) Match(_ context.Context, _ string, threshold float64) (*driving.MatchResult, error) {
	m.lastThreshold = threshold
	return m.match, m.err
}

func (m *mockWorkbench) BuildControlPoints(_ context.Context, _ string, opts driving.BuildOptions) (*driving.ControlPointsResult, error) {
	m.lastBuild = opts
	return m.pdcs, m.err
}

func (m *mockWorkbench) GenerateTestCases(_ context.Context, _ string, opts driving.GenerateOptions) (*driving.TestCasesResult, error) {
	m.lastGenerate = opts
	return m.cases, m.err
}

func (m *mockWorkbench) Export(_ context.Context, _ string, kind driving.ExportKind) (*driving.ExportResult, error) {
	m.lastExport = kind
	return m.export, m.err
}

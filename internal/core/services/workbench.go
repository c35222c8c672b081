package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/logger"
)

// Ensure WorkbenchService implements the interface.
var _ driving.WorkbenchService = (*WorkbenchService)(nil)

// MIME types of exported files.
const (
	mimeDOCX = domain.MIMETypeDOCX
	mimePNG  = "image/png"
)

// WorkbenchConfig wires the workbench to its collaborators.
type WorkbenchConfig struct {
	Sessions      driven.SessionStore
	Normalisers   driven.NormaliserRegistry
	Analysis      *AnalysisService
	Rules         *RuleService
	ControlPoints *ControlPointService
	TestCases     *TestCaseService
	Exporter      driven.Exporter
	WordCloud     driven.WordCloudRenderer

	// Threshold is used when a call passes zero.
	Threshold float64
}

// WorkbenchService runs the pipeline stages of analyst sessions.
type WorkbenchService struct {
	cfg WorkbenchConfig
	now func() time.Time
}

// NewWorkbenchService creates a workbench.
func NewWorkbenchService(cfg WorkbenchConfig) *WorkbenchService {
	if cfg.Threshold == 0 {
		cfg.Threshold = domain.DefaultThreshold
	}
	return &WorkbenchService{cfg: cfg, now: time.Now}
}

// NewSession creates an empty session.
func (w *WorkbenchService) NewSession(ctx context.Context) (*domain.Session, error) {
	now := w.now()
	session := &domain.Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := w.cfg.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	logger.Debug("session %s created", session.ID)
	return session, nil
}

// Session returns a session by ID.
func (w *WorkbenchService) Session(ctx context.Context, id string) (*domain.Session, error) {
	return w.cfg.Sessions.Get(ctx, id)
}

// Sessions lists open sessions, most recently updated first.
func (w *WorkbenchService) Sessions(ctx context.Context) ([]*domain.Session, error) {
	return w.cfg.Sessions.List(ctx)
}

// CloseSession discards a session.
func (w *WorkbenchService) CloseSession(ctx context.Context, id string) error {
	if _, err := w.cfg.Sessions.Get(ctx, id); err != nil {
		return err
	}
	if err := w.cfg.Sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	logger.Debug("session %s closed", id)
	return nil
}

// LoadDocument extracts the text of raw. The previous document and
// everything derived from it are discarded.
func (w *WorkbenchService) LoadDocument(ctx context.Context, id string, raw *domain.RawDocument) (*domain.Document, error) {
	session, err := w.cfg.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := w.cfg.Normalisers.Normalise(ctx, raw)
	if err != nil {
		return nil, err
	}

	doc := result.Document
	session.Document = &doc
	session.ResetFrom(domain.StageDocument)
	logger.Info("loaded %s (%d characters)", doc.Title, len([]rune(doc.Content)))
	return &doc, w.save(ctx, session)
}

// Analyze cleans the document text and counts term frequencies.
func (w *WorkbenchService) Analyze(ctx context.Context, id string) (*domain.Analysis, error) {
	session, err := w.sessionWithDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	analysis, err := w.cfg.Analysis.Analyze(ctx, session.Document.Content)
	if err != nil {
		return nil, err
	}
	session.Analysis = analysis
	return analysis, w.save(ctx, session)
}

// ExtractRules finds the business rules of the document.
func (w *WorkbenchService) ExtractRules(ctx context.Context, id string, opts driving.ExtractOptions) (*driving.RulesResult, error) {
	session, err := w.sessionWithDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Section("Rule Extraction")
	result := w.cfg.Rules.Extract(ctx, session.Document.Content, opts.Assisted)
	session.Rules = result.Rules
	session.ResetFrom(domain.StageRules)
	logger.Info("%d rules extracted", len(result.Rules))
	return result, w.save(ctx, session)
}

// ImportControlPoints reads existing control points from raw.
func (w *WorkbenchService) ImportControlPoints(
	ctx context.Context, id string, raw *domain.RawDocument,
) (*driving.ImportResult, error) {
	session, err := w.cfg.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	normalised, err := w.cfg.Normalisers.Normalise(ctx, raw)
	if err != nil {
		return nil, err
	}

	doc := normalised.Document
	pdcs := w.cfg.ControlPoints.Import(doc.Content)
	session.Imported = pdcs
	session.ResetFrom(domain.StageImport)
	logger.Info("%d control points imported from %s", len(pdcs), doc.Title)
	return &driving.ImportResult{Document: &doc, ControlPoints: pdcs}, w.save(ctx, session)
}

// Match compares the session rules with the imported control points.
func (w *WorkbenchService) Match(ctx context.Context, id string, threshold float64) (*driving.MatchResult, error) {
	session, err := w.cfg.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(session.Rules) == 0 {
		return nil, domain.ErrNoRules
	}
	if len(session.Imported) == 0 {
		return nil, domain.ErrNoControlPoints
	}

	logger.Section("Matching")
	result, err := w.cfg.ControlPoints.Match(session.Rules, session.Imported, w.threshold(threshold))
	if err != nil {
		return nil, err
	}
	logger.With("session", id, "threshold", result.Threshold,
		"covered", len(result.Covered), "uncovered", len(result.Uncovered)).Debug("rules matched")
	session.Matrix = &result.Matrix
	return result, w.save(ctx, session)
}

// BuildControlPoints keeps the imported control points and generates one
// for each uncovered rule.
func (w *WorkbenchService) BuildControlPoints(
	ctx context.Context, id string, opts driving.BuildOptions,
) (*driving.ControlPointsResult, error) {
	session, err := w.cfg.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(session.Rules) == 0 && len(session.Imported) == 0 {
		return nil, domain.ErrNoRules
	}

	logger.Section("Control Points")
	result, err := w.cfg.ControlPoints.Build(ctx, session.Rules, session.Imported, w.threshold(opts.Threshold), opts.Assisted)
	if err != nil {
		return nil, err
	}
	fields := logger.With("session", id, "imported", result.Imported, "generated", result.Generated)
	fields.Debug("control points built")
	for _, warning := range result.Warnings {
		fields.Warn(warning)
	}
	session.ControlPoints = result.ControlPoints
	session.ResetFrom(domain.StageControlPoints)
	return result, w.save(ctx, session)
}

// GenerateTestCases builds one test case per control point.
func (w *WorkbenchService) GenerateTestCases(
	ctx context.Context, id string, opts driving.GenerateOptions,
) (*driving.TestCasesResult, error) {
	session, err := w.cfg.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(session.ControlPoints) == 0 {
		return nil, domain.ErrNoControlPoints
	}

	logger.Section("Test Cases")
	result := w.cfg.TestCases.Generate(ctx, session.ControlPoints, opts.Assisted)
	session.TestCases = result.TestCases
	logger.Info("%d test cases generated", len(result.TestCases))
	for _, warning := range result.Warnings {
		logger.With("session", id).Warn(warning)
	}
	return result, w.save(ctx, session)
}

// Export renders one session output.
func (w *WorkbenchService) Export(ctx context.Context, id string, kind driving.ExportKind) (*driving.ExportResult, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: export kind %q", domain.ErrInvalidInput, kind)
	}
	session, err := w.cfg.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var content []byte
	mimeType := mimeDOCX
	switch kind {
	case driving.ExportRules:
		if len(session.Rules) == 0 {
			return nil, domain.ErrNoRules
		}
		content, err = w.cfg.Exporter.ExportRules(session.Rules)
	case driving.ExportControlPoints:
		if len(session.ControlPoints) == 0 {
			return nil, domain.ErrNoControlPoints
		}
		content, err = w.cfg.Exporter.ExportControlPoints(domain.Texts(session.ControlPoints))
	case driving.ExportTestCases:
		if len(session.TestCases) == 0 {
			return nil, fmt.Errorf("%w: no test cases generated", domain.ErrInvalidInput)
		}
		content, err = w.cfg.Exporter.ExportTestCases(session.TestCases)
	case driving.ExportWordCloud:
		if session.Analysis == nil || len(session.Analysis.Frequencies) == 0 {
			return nil, fmt.Errorf("%w: no frequency analysis", domain.ErrInvalidInput)
		}
		if w.cfg.WordCloud == nil {
			return nil, fmt.Errorf("%w: no word cloud renderer", domain.ErrUnsupportedType)
		}
		mimeType = mimePNG
		content, err = w.cfg.WordCloud.Render(session.Analysis.Frequencies)
	}
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", kind, err)
	}

	return &driving.ExportResult{
		FileName: kind.DefaultFileName(),
		MIMEType: mimeType,
		Content:  content,
	}, nil
}

func (w *WorkbenchService) sessionWithDocument(ctx context.Context, id string) (*domain.Session, error) {
	session, err := w.cfg.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Document == nil || strings.TrimSpace(session.Document.Content) == "" {
		return nil, domain.ErrNoDocument
	}
	return session, nil
}

func (w *WorkbenchService) threshold(t float64) float64 {
	if t == 0 {
		return w.cfg.Threshold
	}
	return t
}

func (w *WorkbenchService) save(ctx context.Context, session *domain.Session) error {
	session.UpdatedAt = w.now()
	if err := w.cfg.Sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

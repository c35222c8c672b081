package driving

import (
	"context"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
)

// WorkbenchService drives one analyst session through the pipeline:
// document, analysis, rules, control points, test cases, export.
// Each call runs one stage, overwrites that stage's output and clears
// whatever depended on it.
type WorkbenchService interface {
	// NewSession creates an empty session.
	NewSession(ctx context.Context) (*domain.Session, error)

	// Session returns a session by ID.
	Session(ctx context.Context, id string) (*domain.Session, error)

	// Sessions lists open sessions, most recently updated first.
	Sessions(ctx context.Context) ([]*domain.Session, error)

	// CloseSession discards a session and everything it holds.
	CloseSession(ctx context.Context, id string) error

	// LoadDocument extracts the text of raw into the session.
	LoadDocument(ctx context.Context, id string, raw *domain.RawDocument) (*domain.Document, error)

	// Analyze cleans the document text and counts term frequencies.
	Analyze(ctx context.Context, id string) (*domain.Analysis, error)

	// ExtractRules finds the business rules of the document.
	ExtractRules(ctx context.Context, id string, opts ExtractOptions) (*RulesResult, error)

	// ImportControlPoints reads existing control points from an auxiliary document.
	ImportControlPoints(ctx context.Context, id string, raw *domain.RawDocument) (*ImportResult, error)

	// Match compares the session rules with the imported control points.
	Match(ctx context.Context, id string, threshold float64) (*MatchResult, error)

	// BuildControlPoints keeps the imported control points and generates
	// one for each rule they do not cover.
	BuildControlPoints(ctx context.Context, id string, opts BuildOptions) (*ControlPointsResult, error)

	// GenerateTestCases builds one test case per control point.
	GenerateTestCases(ctx context.Context, id string, opts GenerateOptions) (*TestCasesResult, error)

	// Export renders one session output as a downloadable file.
	Export(ctx context.Context, id string, kind ExportKind) (*ExportResult, error)
}

// ExtractOptions configures rule extraction.
type ExtractOptions struct {
	// Assisted delegates extraction to the text-generation service.
	Assisted bool
}

// BuildOptions configures control point generation.
type BuildOptions struct {
	// Threshold is the similarity from which a rule counts as covered.
	// Zero selects the configured default.
	Threshold float64

	// Assisted delegates phrasing to the text-generation service.
	Assisted bool
}

// GenerateOptions configures test case generation.
type GenerateOptions struct {
	// Assisted delegates the fields to the text-generation service.
	Assisted bool
}

// RulesResult is the output of rule extraction.
type RulesResult struct {
	Rules    []string         `json:"rules"`
	Stats    domain.RuleStats `json:"stats"`
	Warnings []string         `json:"warnings,omitempty"`
}

// ImportResult is the output of a control point import.
type ImportResult struct {
	Document      *domain.Document      `json:"-"`
	ControlPoints []domain.ControlPoint `json:"control_points"`
}

// MatchResult is the output of rule to control point matching.
type MatchResult struct {
	Matrix    domain.SimilarityMatrix `json:"matrix"`
	Threshold float64                 `json:"threshold"`
	Covered   []CoveredRule           `json:"covered"`
	Uncovered []string                `json:"uncovered"`
}

// CoveredRule pairs a rule with its best matching control point.
type CoveredRule struct {
	Rule         string  `json:"rule"`
	ControlPoint string  `json:"control_point"`
	Score        float64 `json:"score"`
}

// ControlPointsResult is the working control point list.
type ControlPointsResult struct {
	ControlPoints []domain.ControlPoint `json:"control_points"`
	Imported      int                   `json:"imported"`
	Generated     int                   `json:"generated"`
	Warnings      []string              `json:"warnings,omitempty"`
}

// TestCasesResult is the output of test case generation.
type TestCasesResult struct {
	TestCases []domain.TestCase `json:"test_cases"`
	Warnings  []string          `json:"warnings,omitempty"`
}

// ExportKind selects what Export renders.
type ExportKind string

// Export kinds.
const (
	ExportRules         ExportKind = "rules"
	ExportControlPoints ExportKind = "control_points"
	ExportTestCases     ExportKind = "test_cases"
	ExportWordCloud     ExportKind = "wordcloud"
)

// IsValid returns true if the kind is recognised.
func (k ExportKind) IsValid() bool {
	switch k {
	case ExportRules, ExportControlPoints, ExportTestCases, ExportWordCloud:
		return true
	default:
		return false
	}
}

// DefaultFileName is the suggested download name.
func (k ExportKind) DefaultFileName() string {
	switch k {
	case ExportRules:
		return "regles_gestion.docx"
	case ExportControlPoints:
		return "points_de_controle.docx"
	case ExportTestCases:
		return "cas_de_test.docx"
	case ExportWordCloud:
		return "wordcloud.png"
	default:
		return string(k)
	}
}

// ExportResult is a rendered file.
type ExportResult struct {
	FileName string
	MIMEType string
	Content  []byte
}

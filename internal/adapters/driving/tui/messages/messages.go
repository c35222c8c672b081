// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
)

// ViewType identifies which tab is currently active.
type ViewType int

const (
	// ViewDocument loads the requirement document and shows its preview.
	ViewDocument ViewType = iota
	// ViewAnalysis shows the cleaned text statistics and top terms.
	ViewAnalysis
	// ViewRules lists the extracted business rules.
	ViewRules
	// ViewControlPoints imports, matches and builds control points.
	ViewControlPoints
	// ViewTestCases lists the generated test cases.
	ViewTestCases
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// Tabs is the order in which the pipeline tabs are shown.
var Tabs = []ViewType{ViewDocument, ViewAnalysis, ViewRules, ViewControlPoints, ViewTestCases}

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDocument:
		return "document"
	case ViewAnalysis:
		return "analysis"
	case ViewRules:
		return "rules"
	case ViewControlPoints:
		return "control_points"
	case ViewTestCases:
		return "test_cases"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Title returns the tab label.
func (v ViewType) Title() string {
	switch v {
	case ViewDocument:
		return "Document"
	case ViewAnalysis:
		return "Analyse"
	case ViewRules:
		return "Règles"
	case ViewControlPoints:
		return "PDC"
	case ViewTestCases:
		return "Cas de test"
	case ViewHelp:
		return "Aide"
	default:
		return "?"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SessionStarted carries the workbench session the TUI works on.
type SessionStarted struct {
	SessionID string
	Err       error
}

// WorkStarted signals a long-running stage has begun.
type WorkStarted struct {
	Label string
}

// Start returns a command announcing a long-running stage.
func Start(label string) tea.Cmd {
	return func() tea.Msg {
		return WorkStarted{Label: label}
	}
}

// DocumentLoaded carries the extracted requirement document.
type DocumentLoaded struct {
	Document *domain.Document
	Err      error
}

// AnalysisCompleted carries the frequency analysis.
type AnalysisCompleted struct {
	Analysis *domain.Analysis
	Err      error
}

// RulesExtracted carries the extracted rules.
type RulesExtracted struct {
	Result *driving.RulesResult
	Err    error
}

// ControlPointsImported carries the control points read from an auxiliary document.
type ControlPointsImported struct {
	Result *driving.ImportResult
	Err    error
}

// RulesMatched carries the coverage of the rules by the imported control points.
type RulesMatched struct {
	Result *driving.MatchResult
	Err    error
}

// ControlPointsBuilt carries the working control point list.
type ControlPointsBuilt struct {
	Result *driving.ControlPointsResult
	Err    error
}

// TestCasesGenerated carries the generated test cases.
type TestCasesGenerated struct {
	Result *driving.TestCasesResult
	Err    error
}

// ExportRequested asks the app to write one output to disk.
type ExportRequested struct {
	Kind driving.ExportKind
}

// Exported signals an output was written.
type Exported struct {
	Path string
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

package domain

import (
	"strings"
	"time"
)

// Session is the state of one analyst session. Each stage overwrites its
// own output wholesale; there is no merging between runs.
type Session struct {
	ID string

	// Document is the requirement document text.
	Document *Document

	// Analysis is the cleaned text and its frequency table.
	Analysis *Analysis

	// Rules are the extracted business rules.
	Rules []string

	// Imported are the control points read from an auxiliary document.
	Imported []ControlPoint

	// Matrix is the last rule by imported control point comparison.
	Matrix *SimilarityMatrix

	// ControlPoints is the working control point list.
	ControlPoints []ControlPoint

	// TestCases are generated one per control point.
	TestCases []TestCase

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ResetFrom clears every output that depends on the given stage.
func (s *Session) ResetFrom(stage Stage) {
	switch stage {
	case StageDocument:
		s.Analysis = nil
		s.Rules = nil
		s.Matrix = nil
		s.ControlPoints = nil
		s.TestCases = nil
	case StageRules, StageImport:
		s.Matrix = nil
		s.ControlPoints = nil
		s.TestCases = nil
	case StageControlPoints:
		s.TestCases = nil
	}
}

// Stage names a pipeline step of a session.
type Stage string

// Pipeline stages.
const (
	StageDocument      Stage = "document"
	StageAnalysis      Stage = "analysis"
	StageRules         Stage = "rules"
	StageImport        Stage = "import"
	StageMatch         Stage = "match"
	StageControlPoints Stage = "control_points"
	StageTestCases     Stage = "test_cases"
)

// RuleStats summarises an extracted rule list.
type RuleStats struct {
	Count           int     `json:"count"`
	AverageWords    float64 `json:"average_words"`
	LongestRuleSize int     `json:"longest_rule_words"`
}

// ComputeRuleStats counts rules and their average length in words.
func ComputeRuleStats(rules []string) RuleStats {
	stats := RuleStats{Count: len(rules)}
	if len(rules) == 0 {
		return stats
	}
	total := 0
	for _, r := range rules {
		n := len(strings.Fields(r))
		total += n
		if n > stats.LongestRuleSize {
			stats.LongestRuleSize = n
		}
	}
	stats.AverageWords = float64(total) / float64(len(rules))
	return stats
}

package services

import (
	"context"
	"fmt"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/extraction"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/generation"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/logger"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/similarity"
)

// ControlPointService imports, matches and generates control points.
type ControlPointService struct {
	extractor *extraction.ControlPointExtractor
	generator *generation.ControlPointGenerator
	lm        driven.LanguageModel
	llm       driven.LLMService
}

// NewControlPointService creates a control point service. lm and llm may be nil.
func NewControlPointService(
	extractor *extraction.ControlPointExtractor,
	generator *generation.ControlPointGenerator,
	lm driven.LanguageModel,
	llm driven.LLMService,
) *ControlPointService {
	return &ControlPointService{
		extractor: extractor,
		generator: generator,
		lm:        lm,
		llm:       llm,
	}
}

// Import finds the control points of an auxiliary document.
func (s *ControlPointService) Import(text string) []domain.ControlPoint {
	texts := s.extractor.Extract(text)
	pdcs := make([]domain.ControlPoint, len(texts))
	for i, t := range texts {
		pdcs[i] = domain.ControlPoint{Text: t, Origin: domain.OriginImported}
	}
	return pdcs
}

// Match compares rules with existing control points.
func (s *ControlPointService) Match(rules []string, existing []domain.ControlPoint, threshold float64) (*driving.MatchResult, error) {
	if !domain.ValidThreshold(threshold) {
		return nil, fmt.Errorf("%w: threshold %.2f outside [%.1f, %.1f]",
			domain.ErrInvalidInput, threshold, domain.MinThreshold, domain.MaxThreshold)
	}

	matrix, err := similarity.Compare(rules, domain.Texts(existing))
	if err != nil {
		return nil, err
	}

	result := &driving.MatchResult{Matrix: matrix, Threshold: threshold}
	for i, rule := range matrix.Rules {
		col, score := matrix.Best(i)
		if col >= 0 && score >= threshold {
			result.Covered = append(result.Covered, driving.CoveredRule{
				Rule:         rule,
				ControlPoint: matrix.ControlPoints[col],
				Score:        score,
			})
			continue
		}
		result.Uncovered = append(result.Uncovered, rule)
	}
	return result, nil
}

// Build keeps the existing control points and appends one generated
// control point per rule they do not cover. Without existing control
// points every rule gets one.
func (s *ControlPointService) Build(
	ctx context.Context, rules []string, existing []domain.ControlPoint, threshold float64, assisted bool,
) (*driving.ControlPointsResult, error) {
	if !domain.ValidThreshold(threshold) {
		return nil, fmt.Errorf("%w: threshold %.2f outside [%.1f, %.1f]",
			domain.ErrInvalidInput, threshold, domain.MinThreshold, domain.MaxThreshold)
	}

	uncovered := rules
	if len(existing) > 0 && len(rules) > 0 {
		match, err := s.Match(rules, existing, threshold)
		if err != nil {
			return nil, err
		}
		uncovered = match.Uncovered
	}

	result := &driving.ControlPointsResult{
		ControlPoints: append([]domain.ControlPoint(nil), existing...),
		Imported:      len(existing),
	}

	warned := make(map[string]bool)
	for _, rule := range uncovered {
		var draft generation.Draft
		if assisted {
			draft = s.generator.GenerateAssisted(ctx, rule, s.lm, s.llm)
		} else {
			draft = s.generator.Generate(ctx, rule, s.lm)
		}
		result.ControlPoints = append(result.ControlPoints, domain.ControlPoint{
			Text:   draft.Text,
			Origin: domain.OriginGenerated,
			Rule:   rule,
		})
		result.Generated++

		if draft.Warning != nil {
			msg := draft.Warning.Error()
			if !warned[msg] {
				warned[msg] = true
				result.Warnings = append(result.Warnings, msg)
			}
		}
	}

	logger.Debug("control points: %d imported, %d generated", result.Imported, result.Generated)
	return result, nil
}

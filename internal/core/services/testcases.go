package services

import (
	"context"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/generation"
)

// TestCaseService builds test cases from control points.
type TestCaseService struct {
	generator *generation.TestCaseGenerator
	llm       driven.LLMService
}

// NewTestCaseService creates a test case service. llm may be nil.
func NewTestCaseService(generator *generation.TestCaseGenerator, llm driven.LLMService) *TestCaseService {
	return &TestCaseService{generator: generator, llm: llm}
}

// Generate builds one test case per control point, numbered from 1.
// Imported control points give manual test cases.
func (s *TestCaseService) Generate(ctx context.Context, pdcs []domain.ControlPoint, assisted bool) *driving.TestCasesResult {
	result := &driving.TestCasesResult{TestCases: make([]domain.TestCase, 0, len(pdcs))}

	warned := make(map[string]bool)
	for i, pdc := range pdcs {
		index := i + 1
		manual := pdc.Origin == domain.OriginImported

		if !assisted {
			result.TestCases = append(result.TestCases, s.generator.Generate(pdc.Text, index, manual))
			continue
		}

		built := s.generator.GenerateAssisted(ctx, pdc.Text, index, manual, s.llm)
		result.TestCases = append(result.TestCases, built.Case)
		if built.Warning != nil {
			msg := built.Warning.Error()
			if !warned[msg] {
				warned[msg] = true
				result.Warnings = append(result.Warnings, msg)
			}
		}
	}
	return result
}

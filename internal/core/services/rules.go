package services

import (
	"context"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/extraction"
)

// RuleService extracts business rules from document text.
type RuleService struct {
	extractor *extraction.RuleExtractor
	lm        driven.LanguageModel
	llm       driven.LLMService
}

// NewRuleService creates a rule service. lm and llm may be nil.
func NewRuleService(extractor *extraction.RuleExtractor, lm driven.LanguageModel, llm driven.LLMService) *RuleService {
	return &RuleService{extractor: extractor, lm: lm, llm: llm}
}

// Extract returns the rules of text with their statistics. In assisted
// mode an unusable service yields no rules and a warning.
func (s *RuleService) Extract(ctx context.Context, text string, assisted bool) *driving.RulesResult {
	var ex extraction.Extraction
	if assisted {
		ex = s.extractor.ExtractAssisted(ctx, text, s.llm)
	} else {
		ex = s.extractor.Extract(ctx, text, s.lm)
	}

	result := &driving.RulesResult{
		Rules: ex.Rules,
		Stats: domain.ComputeRuleStats(ex.Rules),
	}
	if ex.Warning != nil {
		result.Warnings = append(result.Warnings, ex.Warning.Error())
	}
	return result
}

package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/logger"
)

// minFrequencyTermLength is exclusive: counted terms are longer than this.
const minFrequencyTermLength = 2

// AnalysisService cleans document text and counts term frequencies.
type AnalysisService struct {
	pipeline driven.PostProcessorPipeline
}

// NewAnalysisService creates an analysis service over the cleaning
// pipeline. A nil pipeline means no linguistic model is loaded.
func NewAnalysisService(pipeline driven.PostProcessorPipeline) *AnalysisService {
	return &AnalysisService{pipeline: pipeline}
}

// Available reports whether text cleaning can run.
func (s *AnalysisService) Available() bool {
	return s.pipeline != nil
}

// Analyze runs the cleaning pipeline and builds the frequency table.
func (s *AnalysisService) Analyze(ctx context.Context, text string) (*domain.Analysis, error) {
	if s.pipeline == nil {
		return nil, domain.ErrLanguageModelUnavailable
	}

	analysis := &domain.Analysis{WordCount: len(strings.Fields(text))}
	if analysis.WordCount == 0 {
		return analysis, nil
	}

	tokens, err := s.pipeline.Process(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("clean text: %w", err)
	}

	analysis.CleanText = strings.Join(tokens, " ")
	analysis.Frequencies = Frequencies(tokens)
	logger.Debug("analysis: %d words, %d cleaned tokens, %d distinct terms",
		analysis.WordCount, len(tokens), len(analysis.Frequencies))
	return analysis, nil
}

// Frequencies counts terms longer than two characters, sorted by count
// descending then term.
func Frequencies(tokens []string) []domain.TermFrequency {
	counts := make(map[string]int)
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) > minFrequencyTermLength {
			counts[tok]++
		}
	}

	freqs := make([]domain.TermFrequency, 0, len(counts))
	for term, n := range counts {
		freqs = append(freqs, domain.TermFrequency{Term: term, Count: n})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Term < freqs[j].Term
	})
	return freqs
}

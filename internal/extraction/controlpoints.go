package extraction

import (
	"strings"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/logger"
)

// minControlPointWords is exclusive: a match needs more words than this.
const minControlPointWords = 3

// ControlPointExtractor finds existing verification statements.
type ControlPointExtractor struct {
	patterns []*compiledPattern
}

// NewControlPointExtractor compiles the given patterns, or the defaults
// when none are given.
func NewControlPointExtractor(patterns ...Pattern) (*ControlPointExtractor, error) {
	if len(patterns) == 0 {
		patterns = DefaultControlPointPatterns()
	}
	compiled, err := compile(patterns)
	if err != nil {
		return nil, err
	}
	return &ControlPointExtractor{patterns: compiled}, nil
}

// Extract returns unique control points longer than three words, each
// terminated by a single period, longest first.
func (e *ControlPointExtractor) Extract(text string) []string {
	pdcs := newSet()
	for _, p := range e.patterns {
		for _, m := range p.regex.FindAllString(text, -1) {
			m = strings.TrimRight(strings.TrimSpace(m), ";")
			if len(strings.Fields(m)) <= minControlPointWords {
				continue
			}
			pdcs.add(Clean(m))
		}
	}
	logger.Debug("control points found: %d", len(pdcs.items))
	return pdcs.sorted()
}

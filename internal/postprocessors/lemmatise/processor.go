// Package lemmatise reduces words to their base form and drops stop
// words, punctuation, short words and function words.
package lemmatise

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
)

// Name is the processor name used in configuration.
const Name = "lemmatise"

// DefaultMinLength is the shortest lemma kept, in characters.
const DefaultMinLength = 3

// droppedPOS are function-word categories removed from cleaned text.
var droppedPOS = map[string]bool{
	domain.POSDeterminer:  true,
	domain.POSAdposition:  true,
	domain.POSConjunction: true,
	domain.POSSubordinate: true,
	domain.POSPronoun:     true,
	domain.POSParticle:    true,
}

// Processor lemmatises tokens through a language model.
// It implements the PostProcessor interface.
type Processor struct {
	lm        driven.LanguageModel
	minLength int
}

// Option configures the lemmatise processor.
type Option func(*Processor)

// WithMinLength sets the shortest kept lemma.
func WithMinLength(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.minLength = n
		}
	}
}

// New creates a lemmatiser backed by lm.
func New(lm driven.LanguageModel, opts ...Option) *Processor {
	p := &Processor{lm: lm, minLength: DefaultMinLength}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process annotates the joined tokens and keeps the lemma of every
// content word.
func (p *Processor) Process(ctx context.Context, tokens []string) ([]string, error) {
	annotated, err := p.lm.Annotate(ctx, strings.Join(tokens, " "))
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(annotated))
	for _, tok := range annotated {
		if tok.IsStop || tok.IsPunct || droppedPOS[tok.POS] {
			continue
		}
		if utf8.RuneCountInString(tok.Text) < p.minLength {
			continue
		}
		out = append(out, strings.ToLower(tok.Lemma))
	}
	return out, nil
}

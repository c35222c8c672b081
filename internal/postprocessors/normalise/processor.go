// Package normalise lowercases text, strips punctuation and noise, and
// splits it into words.
package normalise

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Name is the processor name used in configuration.
const Name = "normalise"

// Processor lowercases and tokenises text.
// It implements the PostProcessor interface.
type Processor struct{}

// New creates a normalise processor.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process joins the incoming tokens, applies NFC normalisation and
// lowercasing, replaces everything except letters, digits and
// apostrophes by spaces, and returns the resulting words.
func (p *Processor) Process(ctx context.Context, tokens []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := strings.ToLower(norm.NFC.String(strings.Join(tokens, " ")))
	text = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '\'':
			return r
		case r == '’':
			return '\''
		default:
			return ' '
		}
	}, text)

	return strings.Fields(text), nil
}

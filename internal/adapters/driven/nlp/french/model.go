// Package french provides a rule-based French linguistic model.
//
// The model tags tokens with universal POS tags using closed-class word
// lists and suffix heuristics for verbs, flags stop words and
// punctuation, reduces plurals and auxiliary forms to a base form, and
// splits text into sentences. Plural reduction is accepted only when the
// Snowball French stemmer maps both forms to the same stem.
package french

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/kljensen/snowball/french"
	"golang.org/x/text/unicode/norm"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
)

// Name is the model identifier used in configuration.
const Name = domain.LanguageModelFrench

// Verify interface compliance.
var _ driven.LanguageModel = (*Model)(nil)

// tokenRe matches a word with an optional elision apostrophe, or a single
// non-space symbol.
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}_]+['’]?|[^\s\p{L}\p{N}_]`)

// Model is the built-in French linguistic model.
type Model struct{}

// New creates the French model.
func New() *Model {
	return &Model{}
}

// Name returns the model identifier.
func (m *Model) Name() string {
	return Name
}

// Annotate tokenises text and annotates each token.
func (m *Model) Annotate(ctx context.Context, text string) ([]domain.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := tokenRe.FindAllString(norm.NFC.String(text), -1)
	tokens := make([]domain.Token, 0, len(raw))
	for _, r := range raw {
		tokens = append(tokens, annotate(strings.ReplaceAll(r, "’", "'")))
	}
	return tokens, nil
}

func annotate(text string) domain.Token {
	lower := strings.ToLower(text)
	tok := domain.Token{Text: text, Lemma: lower}

	if isPunct(text) {
		tok.POS = domain.POSPunctuation
		tok.IsPunct = true
		return tok
	}
	tok.IsStop = stopWords[lower]

	switch {
	case isNumber(lower):
		tok.POS = domain.POSNumeral
	case auxiliaries[lower] != "":
		tok.POS = domain.POSAuxiliary
		tok.Lemma = auxiliaries[lower]
	case determiners[lower]:
		tok.POS = domain.POSDeterminer
	case pronouns[lower]:
		tok.POS = domain.POSPronoun
	case subordinators[lower]:
		tok.POS = domain.POSSubordinate
	case coordinators[lower]:
		tok.POS = domain.POSConjunction
	case adpositions[lower]:
		tok.POS = domain.POSAdposition
	case adverbs[lower], isAdverb(lower):
		tok.POS = domain.POSAdverb
	case conjugated[lower] != "":
		tok.POS = domain.POSVerb
		tok.Lemma = conjugated[lower]
	case isInfinitive(lower):
		tok.POS = domain.POSVerb
	case isParticiple(lower):
		tok.POS = domain.POSVerb
		tok.Lemma = participleLemma(lower)
	default:
		tok.POS = domain.POSNoun
		tok.Lemma = singular(lower)
	}
	return tok
}

func isPunct(s string) bool {
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != ',' && r != '.' {
			return false
		}
	}
	return true
}

// adverbSuffixes only end adverbs, never nouns like "paiement".
var adverbSuffixes = []string{
	"amment", "emment", "iquement", "ivement", "alement", "ablement", "iblement",
	"eusement", "ièrement", "atement",
}

func isAdverb(w string) bool {
	for _, suffix := range adverbSuffixes {
		if strings.HasSuffix(w, suffix) {
			return true
		}
	}
	return false
}

func isInfinitive(w string) bool {
	if notVerbs[w] || len([]rune(w)) < 4 {
		return false
	}
	if infinitivesRE[w] {
		return true
	}
	if strings.HasSuffix(w, "er") {
		return !strings.HasSuffix(w, "eer")
	}
	return strings.HasSuffix(w, "ir") && !strings.HasSuffix(w, "oir")
}

func isParticiple(w string) bool {
	if len([]rune(w)) < 5 || strings.HasSuffix(w, "té") || strings.HasSuffix(w, "tés") {
		return false
	}
	for _, suffix := range []string{"é", "ée", "és", "ées"} {
		if strings.HasSuffix(w, suffix) {
			return true
		}
	}
	return false
}

func participleLemma(w string) string {
	for _, suffix := range []string{"ées", "ée", "és"} {
		if strings.HasSuffix(w, suffix) {
			return strings.TrimSuffix(w, suffix) + "é"
		}
	}
	return w
}

// singular reduces a plural noun or adjective to its singular form.
func singular(w string) string {
	if invariablePlurals[w] || len([]rune(w)) <= 3 {
		return w
	}
	if s, ok := irregularPlurals[w]; ok {
		return s
	}

	var candidate string
	switch {
	case strings.HasSuffix(w, "eaux"):
		return strings.TrimSuffix(w, "x")
	case strings.HasSuffix(w, "aux"):
		return strings.TrimSuffix(w, "aux") + "al"
	case strings.HasSuffix(w, "s"), strings.HasSuffix(w, "x"):
		candidate = w[:len(w)-1]
	default:
		return w
	}

	if french.Stem(w, false) == french.Stem(candidate, false) {
		return candidate
	}
	return w
}

package extraction

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/logger"
)

// MaxPromptChars is how much of the document the rule prompt embeds.
const MaxPromptChars = 10000

// DefaultRulePrompt asks the service for one rule per line.
// %s receives the document text.
const DefaultRulePrompt = `Analyse le texte suivant et identifie toutes les règles de gestion qu'il contient.
Consignes :
1. Une règle de gestion décrit une obligation, une interdiction, une condition ou une permission.
2. Retourne une seule règle par ligne.
3. Conserve la formulation exacte du texte source.
4. N'ajoute ni numérotation, ni puce, ni commentaire.
5. Ignore les phrases descriptives sans portée normative.

Texte :
%s`

// compiledPattern holds a pre-compiled regex pattern.
type compiledPattern struct {
	Pattern
	regex *regexp.Regexp
}

func compile(patterns []Pattern) ([]*compiledPattern, error) {
	compiled := make([]*compiledPattern, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p.Regex)
		if err != nil {
			return nil, fmt.Errorf("pattern %s: %w", p.Name, err)
		}
		compiled = append(compiled, &compiledPattern{Pattern: p, regex: re})
	}
	return compiled, nil
}

// RuleConfig configures a RuleExtractor. Zero values select defaults.
type RuleConfig struct {
	Patterns         []Pattern
	Keywords         []string
	MinSentenceWords int
	Generate         driven.GenerateOptions
}

// Extraction is the outcome of a rule extraction run.
type Extraction struct {
	// Rules are unique, cleaned rules.
	Rules []string

	// Warning is set when a degraded path was taken
	// (no language model, service unavailable or failing).
	Warning error
}

// RuleExtractor finds business rules in document text.
type RuleExtractor struct {
	patterns         []*compiledPattern
	keywords         []string
	minSentenceWords int
	generate         driven.GenerateOptions
	prompts          driven.PromptStore
}

// NewRuleExtractor compiles the configured patterns.
func NewRuleExtractor(cfg RuleConfig) (*RuleExtractor, error) {
	patterns := cfg.Patterns
	if len(patterns) == 0 {
		patterns = DefaultRulePatterns()
	}
	compiled, err := compile(patterns)
	if err != nil {
		return nil, err
	}

	keywords := cfg.Keywords
	if len(keywords) == 0 {
		keywords = DefaultRuleKeywords()
	}

	minWords := cfg.MinSentenceWords
	if minWords == 0 {
		minWords = 5
	}

	return &RuleExtractor{
		patterns:         compiled,
		keywords:         keywords,
		minSentenceWords: minWords,
		generate:         cfg.Generate,
	}, nil
}

// SetPromptStore sets the prompt store for loading customisable prompts.
func (e *RuleExtractor) SetPromptStore(store driven.PromptStore) {
	e.prompts = store
}

// Extract runs the trigger patterns over text and, when lm is non-nil,
// adds keyword-bearing sentences longer than the word minimum. Results
// are sorted longest first.
func (e *RuleExtractor) Extract(ctx context.Context, text string, lm driven.LanguageModel) Extraction {
	if strings.TrimSpace(text) == "" {
		return Extraction{}
	}

	rules := newSet()
	for _, p := range e.patterns {
		matches := p.regex.FindAllString(text, -1)
		logger.Debug("pattern %s: %d matches", p.Name, len(matches))
		for _, m := range matches {
			rules.add(Clean(m))
		}
	}

	var warning error
	if lm == nil {
		warning = fmt.Errorf("sentence heuristics skipped: %w", domain.ErrLanguageModelUnavailable)
	} else {
		sentences, err := lm.Sentences(ctx, text)
		if err != nil {
			warning = fmt.Errorf("sentence split: %w", err)
		}
		for _, s := range sentences {
			if e.isRuleSentence(s) {
				rules.add(Clean(s))
			}
		}
	}

	return Extraction{Rules: rules.sorted(), Warning: warning}
}

func (e *RuleExtractor) isRuleSentence(sentence string) bool {
	if len(strings.Fields(sentence)) <= e.minSentenceWords {
		return false
	}
	lower := strings.ToLower(sentence)
	for _, kw := range e.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ExtractAssisted asks llm for the rules of the first MaxPromptChars
// characters of text. Each non-empty response line becomes one rule, in
// response order. An absent or failing service yields no rules and a
// warning.
func (e *RuleExtractor) ExtractAssisted(ctx context.Context, text string, llm driven.LLMService) Extraction {
	if strings.TrimSpace(text) == "" {
		return Extraction{}
	}
	if llm == nil {
		return Extraction{Warning: domain.ErrLLMUnavailable}
	}

	prompt := fmt.Sprintf(e.loadPrompt(), truncate(text, MaxPromptChars))
	response, err := llm.Generate(ctx, prompt, e.generate)
	if err != nil {
		logger.Warn("rule extraction via %s failed: %v", llm.ModelName(), err)
		return Extraction{Warning: fmt.Errorf("%w: %v", domain.ErrLLMUnavailable, err)}
	}

	rules := newSet()
	for _, line := range strings.Split(response, "\n") {
		line = stripListMarker(line)
		if !hasLetter(line) {
			continue
		}
		rules.add(Clean(line))
	}
	return Extraction{Rules: rules.items}
}

func (e *RuleExtractor) loadPrompt() string {
	if e.prompts != nil {
		if p, err := e.prompts.Load(driven.PromptRuleExtraction); err == nil && p != "" {
			return p
		}
	}
	return DefaultRulePrompt
}

var listMarker = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+`)

// stripListMarker removes a leading bullet or "1." numbering.
func stripListMarker(line string) string {
	return strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

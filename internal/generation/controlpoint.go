package generation

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/extraction"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/logger"
)

// DefaultAction is used when no verb is detected in a rule.
const DefaultAction = "vérifier"

// DefaultControlPointPrompt turns one rule into a control point.
// %s receives the rule.
const DefaultControlPointPrompt = `Transforme la règle de gestion ci-dessous en un Point de Contrôle (PDC) testable.
Le PDC doit :
- commencer par un verbe d'action (Vérifier, Contrôler, S'assurer...),
- être concret et mesurable,
- couvrir l'intégralité de la règle.

Règle : %s

Réponds uniquement avec le PDC, sans commentaire.`

// Draft is a generated control point.
type Draft struct {
	// Text is always usable, even when Warning is set.
	Text string

	// Warning records why a fallback was used.
	Warning error
}

// ControlPointGenerator synthesises control points for uncovered rules.
type ControlPointGenerator struct {
	generate driven.GenerateOptions
	prompts  driven.PromptStore
}

// NewControlPointGenerator creates a generator using opts for service calls.
func NewControlPointGenerator(opts driven.GenerateOptions) *ControlPointGenerator {
	return &ControlPointGenerator{generate: opts}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
func (g *ControlPointGenerator) SetPromptStore(store driven.PromptStore) {
	g.prompts = store
}

// Generate phrases the rule as "<Action> que <rule>", the action being
// the first verb lm detects, or DefaultAction.
func (g *ControlPointGenerator) Generate(ctx context.Context, rule string, lm driven.LanguageModel) Draft {
	if lm == nil {
		return Draft{Text: phrase(DefaultAction, rule), Warning: domain.ErrLanguageModelUnavailable}
	}

	tokens, err := lm.Annotate(ctx, rule)
	if err != nil {
		return Draft{Text: phrase(DefaultAction, rule), Warning: fmt.Errorf("annotate rule: %w", err)}
	}
	return Draft{Text: phrase(firstVerb(tokens), rule)}
}

// GenerateAssisted asks llm for the control point. Any failure falls back
// to Generate.
func (g *ControlPointGenerator) GenerateAssisted(
	ctx context.Context, rule string, lm driven.LanguageModel, llm driven.LLMService,
) Draft {
	if llm == nil {
		d := g.Generate(ctx, rule, lm)
		d.Warning = domain.ErrLLMUnavailable
		return d
	}

	response, err := llm.Generate(ctx, fmt.Sprintf(g.loadPrompt(), rule), g.generate)
	if err != nil {
		logger.Warn("control point generation via %s failed: %v", llm.ModelName(), err)
		d := g.Generate(ctx, rule, lm)
		d.Warning = fmt.Errorf("%w: %v", domain.ErrLLMUnavailable, err)
		return d
	}

	response = strings.TrimSpace(response)
	if response == "" {
		d := g.Generate(ctx, rule, lm)
		d.Warning = fmt.Errorf("empty response from %s", llm.ModelName())
		return d
	}
	return Draft{Text: extraction.Clean(response)}
}

func (g *ControlPointGenerator) loadPrompt() string {
	if g.prompts != nil {
		if p, err := g.prompts.Load(driven.PromptControlPoint); err == nil && p != "" {
			return p
		}
	}
	return DefaultControlPointPrompt
}

func firstVerb(tokens []domain.Token) string {
	for _, tok := range tokens {
		if tok.POS == domain.POSVerb {
			return tok.Text
		}
	}
	return DefaultAction
}

func phrase(action, rule string) string {
	return capitalize(action) + " que " + rule
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

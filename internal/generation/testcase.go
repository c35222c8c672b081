package generation

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/logger"
)

// DefaultTestCasePrompt asks for a structured test case.
// The placeholders receive the control point, the ID and the type label.
const DefaultTestCasePrompt = `Rédige un cas de test détaillé pour le Point de Contrôle suivant.
PDC : %s

Respecte exactement ce format :
ID: %s
Type: %s
Description: <description claire en une phrase>
Étapes:
1. <première étape>
2. <deuxième étape>
3. <troisième étape>
Résultat attendu: <résultat observable>`

// DescriptionTemplates are picked uniformly for auto-generated test cases.
// %s receives the control point.
var DescriptionTemplates = []string{
	"Le système doit satisfaire : %s",
	"Confirmer que %s",
	"Tester la conformité de : %s",
}

// Built is a generated test case.
type Built struct {
	Case domain.TestCase

	// Warning records why the service could not be used.
	Warning error
}

// TestCaseGenerator builds one test case per control point.
// It is safe for concurrent use.
type TestCaseGenerator struct {
	mu       sync.Mutex
	rng      *rand.Rand
	generate driven.GenerateOptions
	prompts  driven.PromptStore
}

// NewTestCaseGenerator creates a generator drawing templates from rng.
// A nil rng is seeded from the clock.
func NewTestCaseGenerator(rng *rand.Rand, opts driven.GenerateOptions) *TestCaseGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &TestCaseGenerator{rng: rng, generate: opts}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
func (g *TestCaseGenerator) SetPromptStore(store driven.PromptStore) {
	g.prompts = store
}

// Generate fills the fixed templates. Manual test cases use the control
// point verbatim as description; others draw one description template.
func (g *TestCaseGenerator) Generate(pdc string, index int, manual bool) domain.TestCase {
	description := pdc
	if !manual {
		g.mu.Lock()
		tmpl := DescriptionTemplates[g.rng.Intn(len(DescriptionTemplates))]
		g.mu.Unlock()
		description = fmt.Sprintf(tmpl, pdc)
	}

	return domain.TestCase{
		ID:             domain.TestCaseID(index),
		Type:           domain.TestCaseTypeFor(manual),
		PDC:            pdc,
		Description:    description,
		Steps:          DefaultSteps(pdc),
		ExpectedResult: DefaultExpectedResult(pdc),
	}
}

// DefaultSteps is the three-step boilerplate for a control point.
func DefaultSteps(pdc string) string {
	return "1. Préparer l'environnement\n2. Exécuter: " + pdc + "\n3. Vérifier le résultat"
}

// DefaultExpectedResult is the expected-result boilerplate for a control point.
func DefaultExpectedResult(pdc string) string {
	return pdc + " est correctement implémenté"
}

// GenerateAssisted builds the heuristic record, then replaces each field
// the service response provides. Fields the response lacks keep their
// heuristic value, so an unusable response yields exactly Generate's
// record.
func (g *TestCaseGenerator) GenerateAssisted(
	ctx context.Context, pdc string, index int, manual bool, llm driven.LLMService,
) Built {
	tc := g.Generate(pdc, index, manual)
	if llm == nil {
		return Built{Case: tc, Warning: domain.ErrLLMUnavailable}
	}

	prompt := fmt.Sprintf(g.loadPrompt(), pdc, tc.ID, tc.Type)
	response, err := llm.Generate(ctx, prompt, g.generate)
	if err != nil {
		logger.Warn("test case %s via %s failed: %v", tc.ID, llm.ModelName(), err)
		return Built{Case: tc, Warning: fmt.Errorf("%w: %v", domain.ErrLLMUnavailable, err)}
	}

	if v, ok := ParseDescription(response); ok {
		tc.Description = v
	}
	if v, ok := ParseSteps(response); ok {
		tc.Steps = v
	}
	if v, ok := ParseExpectedResult(response); ok {
		tc.ExpectedResult = v
	}
	return Built{Case: tc}
}

func (g *TestCaseGenerator) loadPrompt() string {
	if g.prompts != nil {
		if p, err := g.prompts.Load(driven.PromptTestCase); err == nil && strings.Count(p, "%s") == 3 {
			return p
		}
	}
	return DefaultTestCasePrompt
}

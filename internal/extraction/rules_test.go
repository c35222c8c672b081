package extraction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
)

const suspension = "Si le client ne paie pas, alors le compte est suspendu."

func newRuleExtractor(t *testing.T) *RuleExtractor {
	t.Helper()
	e, err := NewRuleExtractor(RuleConfig{})
	require.NoError(t, err)
	return e
}

func TestNewRuleExtractor_InvalidPattern(t *testing.T) {
	_, err := NewRuleExtractor(RuleConfig{Patterns: []Pattern{{Name: "broken", Regex: "(unclosed"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestRuleExtractor_ConditionPattern(t *testing.T) {
	e := newRuleExtractor(t)

	got := e.Extract(context.Background(), suspension, nil)

	require.NotEmpty(t, got.Rules)
	assert.Contains(t, got.Rules, suspension)
}

func TestRuleExtractor_Deduplicates(t *testing.T) {
	e := newRuleExtractor(t)

	got := e.Extract(context.Background(), suspension+" "+suspension, nil)

	count := 0
	for _, r := range got.Rules {
		if r == suspension {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRuleExtractor_SortedByLength(t *testing.T) {
	e := newRuleExtractor(t)
	text := "Le système doit enregistrer chaque commande. " +
		"Si le montant dépasse 1000 euros, alors une validation du responsable est requise."

	got := e.Extract(context.Background(), text, nil)

	require.Len(t, got.Rules, 2)
	assert.Equal(t, "Si le montant dépasse 1000 euros, alors une validation du responsable est requise.", got.Rules[0])
	assert.Equal(t, "Le système doit enregistrer chaque commande.", got.Rules[1])
	for i := 1; i < len(got.Rules); i++ {
		assert.GreaterOrEqual(t, utf8.RuneCountInString(got.Rules[i-1]), utf8.RuneCountInString(got.Rules[i]))
	}
}

func TestRuleExtractor_CaseInsensitive(t *testing.T) {
	e := newRuleExtractor(t)

	got := e.Extract(context.Background(), "LE NON-RESPECT du délai ENTRAÎNE une pénalité.", nil)

	assert.Equal(t, []string{"LE NON-RESPECT du délai ENTRAÎNE une pénalité."}, got.Rules)
}

func TestRuleExtractor_EmptyInput(t *testing.T) {
	e := newRuleExtractor(t)
	llm := &mockLLM{response: "Le client doit payer."}

	assert.Empty(t, e.Extract(context.Background(), "   \n\t", &mockLanguageModel{}).Rules)
	assert.Empty(t, e.ExtractAssisted(context.Background(), "  ", llm).Rules)
	assert.Zero(t, llm.calls)
}

func TestRuleExtractor_WithoutLanguageModelWarns(t *testing.T) {
	e := newRuleExtractor(t)

	got := e.Extract(context.Background(), suspension, nil)

	assert.ErrorIs(t, got.Warning, domain.ErrLanguageModelUnavailable)
}

func TestRuleExtractor_SentenceHeuristic(t *testing.T) {
	e := newRuleExtractor(t)
	lm := &mockLanguageModel{sentences: []string{
		"Chaque facture émise doit être archivée pendant dix ans",
		"La facture doit exister",
		"Le siège social se situe à Paris depuis longtemps",
	}}

	got := e.Extract(context.Background(), "texte quelconque", lm)

	assert.NoError(t, got.Warning)
	assert.Equal(t, []string{"Chaque facture émise doit être archivée pendant dix ans."}, got.Rules)
}

func TestRuleExtractor_SentenceSplitFailure(t *testing.T) {
	e := newRuleExtractor(t)
	lm := &mockLanguageModel{err: errors.New("model crashed")}

	got := e.Extract(context.Background(), suspension, lm)

	assert.Contains(t, got.Rules, suspension)
	assert.Error(t, got.Warning)
}

func TestRuleExtractor_ExtractAssisted(t *testing.T) {
	e := newRuleExtractor(t)
	llm := &mockLLM{response: "1. Le client doit payer\n\n- Le client doit payer.\nSi retard,   pénalité\n---\n"}

	got := e.ExtractAssisted(context.Background(), suspension, llm)

	assert.NoError(t, got.Warning)
	assert.Equal(t, []string{"Le client doit payer.", "Si retard, pénalité."}, got.Rules)
	assert.Equal(t, 1, llm.calls)
	assert.Contains(t, llm.lastPrompt, suspension)
}

func TestRuleExtractor_ExtractAssistedTruncatesText(t *testing.T) {
	e := newRuleExtractor(t)
	llm := &mockLLM{response: ""}
	text := strings.Repeat("é", MaxPromptChars) + "MARQUEUR"

	got := e.ExtractAssisted(context.Background(), text, llm)

	assert.Empty(t, got.Rules)
	assert.NotContains(t, llm.lastPrompt, "MARQUEUR")
	assert.Contains(t, llm.lastPrompt, strings.Repeat("é", MaxPromptChars))
}

func TestRuleExtractor_ExtractAssistedDegrades(t *testing.T) {
	e := newRuleExtractor(t)

	t.Run("no service", func(t *testing.T) {
		got := e.ExtractAssisted(context.Background(), suspension, nil)
		assert.Empty(t, got.Rules)
		assert.ErrorIs(t, got.Warning, domain.ErrLLMUnavailable)
	})

	t.Run("service error", func(t *testing.T) {
		got := e.ExtractAssisted(context.Background(), suspension, &mockLLM{err: errors.New("401")})
		assert.Empty(t, got.Rules)
		assert.ErrorIs(t, got.Warning, domain.ErrLLMUnavailable)
	})
}

func TestRuleExtractor_CustomPrompt(t *testing.T) {
	e := newRuleExtractor(t)
	e.SetPromptStore(&mockPromptStore{prompts: map[string]string{
		"rule_extraction": "Règles de: %s",
	}})
	llm := &mockLLM{}

	e.ExtractAssisted(context.Background(), "abc", llm)

	assert.Equal(t, "Règles de: abc", llm.lastPrompt)
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/extraction"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/generation"
)

func newControlPointService(t *testing.T, lm driven.LanguageModel, llm driven.LLMService) *ControlPointService {
	t.Helper()
	ex, err := extraction.NewControlPointExtractor()
	require.NoError(t, err)
	return NewControlPointService(ex, generation.NewControlPointGenerator(driven.GenerateOptions{}), lm, llm)
}

func imported(texts ...string) []domain.ControlPoint {
	out := make([]domain.ControlPoint, len(texts))
	for i, t := range texts {
		out[i] = domain.ControlPoint{Text: t, Origin: domain.OriginImported}
	}
	return out
}

func TestControlPointService_Import(t *testing.T) {
	svc := newControlPointService(t, nil, nil)

	pdcs := svc.Import("Vérifier que le compte est suspendu en cas de non paiement.\nVérifier le total.")

	require.Len(t, pdcs, 1)
	assert.Equal(t, "Vérifier que le compte est suspendu en cas de non paiement.", pdcs[0].Text)
	assert.Equal(t, domain.OriginImported, pdcs[0].Origin)
}

func TestControlPointService_Match(t *testing.T) {
	svc := newControlPointService(t, nil, nil)
	rules := []string{
		"Vérifier que le client paie la facture.",
		"Le stock doit être mis à jour chaque jour.",
	}

	result, err := svc.Match(rules, imported("Vérifier que le client paie la facture."), 0.6)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Matrix.Rows())
	assert.Equal(t, 1, result.Matrix.Cols())
	require.Len(t, result.Covered, 1)
	assert.InDelta(t, 1.0, result.Covered[0].Score, 1e-9)
	assert.Equal(t, []string{"Le stock doit être mis à jour chaque jour."}, result.Uncovered)
}

func TestControlPointService_Match_InvalidThreshold(t *testing.T) {
	svc := newControlPointService(t, nil, nil)

	for _, threshold := range []float64{0, 0.05, 1.01} {
		_, err := svc.Match([]string{"a."}, imported("b."), threshold)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestControlPointService_Match_EmptyCorpus(t *testing.T) {
	svc := newControlPointService(t, nil, nil)

	_, err := svc.Match(nil, imported("Vérifier le total des lignes."), 0.6)

	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
}

func TestControlPointService_Build_WithoutExisting(t *testing.T) {
	svc := newControlPointService(t, nil, nil)
	rules := []string{"Le client doit payer la facture.", "Le compte est suspendu."}

	result, err := svc.Build(context.Background(), rules, nil, 0.6, false)

	require.NoError(t, err)
	require.Len(t, result.ControlPoints, 2)
	assert.Equal(t, "Vérifier que Le client doit payer la facture.", result.ControlPoints[0].Text)
	assert.Equal(t, domain.OriginGenerated, result.ControlPoints[0].Origin)
	assert.Equal(t, rules[0], result.ControlPoints[0].Rule)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 2, result.Generated)
	// One warning even though both rules fell back.
	assert.Len(t, result.Warnings, 1)
}

func TestControlPointService_Build_KeepsExistingAndFillsGaps(t *testing.T) {
	svc := newControlPointService(t, verbModel{}, nil)
	rules := []string{
		"Vérifier que le client paie la facture.",
		"Le stock doit être mis à jour chaque jour.",
	}
	existing := imported("Vérifier que le client paie la facture.")

	result, err := svc.Build(context.Background(), rules, existing, 0.6, false)

	require.NoError(t, err)
	require.Len(t, result.ControlPoints, 2)
	assert.Equal(t, existing[0], result.ControlPoints[0])
	assert.Equal(t, domain.OriginGenerated, result.ControlPoints[1].Origin)
	assert.Equal(t, "Le stock doit être mis à jour chaque jour.", result.ControlPoints[1].Rule)
	assert.Empty(t, result.Warnings)
}

func TestControlPointService_Build_Assisted(t *testing.T) {
	llm := &mockLLM{response: "  Contrôler que la facture est payée  "}
	svc := newControlPointService(t, nil, llm)

	result, err := svc.Build(context.Background(), []string{"Le client doit payer la facture."}, nil, 0.6, true)

	require.NoError(t, err)
	require.Len(t, result.ControlPoints, 1)
	assert.Equal(t, "Contrôler que la facture est payée.", result.ControlPoints[0].Text)
	assert.Empty(t, result.Warnings)
}

func TestControlPointService_Build_AssistedFallsBackToHeuristic(t *testing.T) {
	svc := newControlPointService(t, nil, &mockLLM{err: errors.New("timeout")})

	result, err := svc.Build(context.Background(), []string{"Le client doit payer la facture."}, nil, 0.6, true)

	require.NoError(t, err)
	assert.Equal(t, "Vérifier que Le client doit payer la facture.", result.ControlPoints[0].Text)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "timeout")
}

func TestControlPointService_Build_InvalidThreshold(t *testing.T) {
	svc := newControlPointService(t, nil, nil)

	_, err := svc.Build(context.Background(), []string{"a."}, nil, 2, false)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

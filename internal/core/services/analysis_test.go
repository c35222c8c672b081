package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
)

func TestAnalysisService_Analyze(t *testing.T) {
	svc := NewAnalysisService(&splitPipeline{})

	analysis, err := svc.Analyze(context.Background(), "Facture client facture de la Facture client")

	require.NoError(t, err)
	assert.Equal(t, 7, analysis.WordCount)
	assert.Equal(t, "facture client facture de la facture client", analysis.CleanText)
	assert.Equal(t, []domain.TermFrequency{
		{Term: "facture", Count: 3},
		{Term: "client", Count: 2},
	}, analysis.Frequencies)
}

func TestAnalysisService_Analyze_EmptyText(t *testing.T) {
	svc := NewAnalysisService(&splitPipeline{})

	analysis, err := svc.Analyze(context.Background(), "  \n ")

	require.NoError(t, err)
	assert.Zero(t, analysis.WordCount)
	assert.Empty(t, analysis.Frequencies)
}

func TestAnalysisService_Analyze_NoLanguageModel(t *testing.T) {
	svc := NewAnalysisService(nil)

	_, err := svc.Analyze(context.Background(), "texte")

	assert.ErrorIs(t, err, domain.ErrLanguageModelUnavailable)
	assert.False(t, svc.Available())
}

func TestAnalysisService_Analyze_PipelineError(t *testing.T) {
	svc := NewAnalysisService(&splitPipeline{err: errors.New("boom")})

	_, err := svc.Analyze(context.Background(), "texte")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "clean text")
}

func TestFrequencies_TieOrder(t *testing.T) {
	freqs := Frequencies([]string{"zeta", "alpha", "zeta", "alpha", "mid", "ab"})

	assert.Equal(t, []domain.TermFrequency{
		{Term: "alpha", Count: 2},
		{Term: "zeta", Count: 2},
		{Term: "mid", Count: 1},
	}, freqs)
}

package analysis

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/messages"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
)

type fakeWorkbench struct {
	driving.WorkbenchService

	analysis *domain.Analysis
	err      error
}

func (f *fakeWorkbench) Analyze(_ context.Context, _ string) (*domain.Analysis, error) {
	return f.analysis, f.err
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleAnalysis(n int) *domain.Analysis {
	freqs := make([]domain.TermFrequency, n)
	for i := range freqs {
		freqs[i] = domain.TermFrequency{Term: fmt.Sprintf("terme%02d", i+1), Count: n - i}
	}
	return &domain.Analysis{WordCount: 250, Frequencies: freqs}
}

func TestNewView(t *testing.T) {
	v := NewView(nil, &fakeWorkbench{})

	require.NotNil(t, v)
	assert.Equal(t, domain.DefaultTopWords, v.Top())
	assert.Contains(t, v.View(), "[r] analyser")
}

func TestView_Run(t *testing.T) {
	wb := &fakeWorkbench{analysis: sampleAnalysis(3)}
	v := NewView(nil, wb)

	_, cmd := v.Update(key("r"))
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	require.Len(t, batch, 2)
	done, ok := batch[1]().(messages.AnalysisCompleted)
	require.True(t, ok)
	assert.Equal(t, wb.analysis, done.Analysis)
}

func TestView_RendersTopTerms(t *testing.T) {
	v := NewView(nil, &fakeWorkbench{})
	v.SetDimensions(100, 30)

	v.Update(messages.AnalysisCompleted{Analysis: sampleAnalysis(30)})

	view := v.View()
	assert.Contains(t, view, "250 mots, 30 termes distincts")
	assert.Contains(t, view, "Top 20")
	assert.Contains(t, view, "terme20")
	assert.NotContains(t, view, "terme21")
}

func TestView_TopBounds(t *testing.T) {
	v := NewView(nil, &fakeWorkbench{})

	for i := 0; i < 10; i++ {
		v.Update(key("+"))
	}
	assert.Equal(t, domain.MaxTopWords, v.Top())

	for i := 0; i < 20; i++ {
		v.Update(key("-"))
	}
	assert.Equal(t, domain.MinTopWords, v.Top())
}

func TestView_Export(t *testing.T) {
	v := NewView(nil, &fakeWorkbench{})

	_, cmd := v.Update(key("e"))
	assert.Nil(t, cmd, "nothing to export before the analysis")

	v.Update(messages.AnalysisCompleted{Analysis: sampleAnalysis(5)})
	_, cmd = v.Update(key("e"))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ExportRequested{Kind: driving.ExportWordCloud}, cmd())
}

func TestView_ErrorAndReset(t *testing.T) {
	v := NewView(nil, &fakeWorkbench{})

	v.Update(messages.AnalysisCompleted{Err: errors.New("linguistic model unavailable")})
	assert.Contains(t, v.View(), "linguistic model unavailable")

	v.Update(messages.AnalysisCompleted{Analysis: sampleAnalysis(5)})
	v.Reset()
	assert.Nil(t, v.Analysis())
}

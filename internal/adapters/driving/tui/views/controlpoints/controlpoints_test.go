package controlpoints

import (
	"context"
	"os"
	"path/filepath"
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

	raw       *domain.RawDocument
	threshold float64
	build     driving.BuildOptions
}

func (f *fakeWorkbench) ImportControlPoints(_ context.Context, _ string, raw *domain.RawDocument) (*driving.ImportResult, error) {
	f.raw = raw
	return &driving.ImportResult{ControlPoints: []domain.ControlPoint{
		{Text: "Vérifier le total.", Origin: domain.OriginImported},
	}}, nil
}

func (f *fakeWorkbench) Match(_ context.Context, _ string, threshold float64) (*driving.MatchResult, error) {
	f.threshold = threshold
	return &driving.MatchResult{Threshold: threshold, Uncovered: []string{"r."}}, nil
}

func (f *fakeWorkbench) BuildControlPoints(_ context.Context, _ string, opts driving.BuildOptions) (*driving.ControlPointsResult, error) {
	f.build = opts
	return &driving.ControlPointsResult{}, nil
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// last runs a batched stage command and returns its result message.
func last(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	require.Len(t, batch, 2)
	assert.IsType(t, messages.WorkStarted{}, batch[0]())
	return batch[1]()
}

func TestNewView(t *testing.T) {
	v := NewView(nil, &fakeWorkbench{}, 0.7)

	require.NotNil(t, v)
	assert.False(t, v.Capturing())
	assert.InDelta(t, 0.7, v.Threshold(), 1e-9)
}

func TestNewView_InvalidThresholdFallsBack(t *testing.T) {
	v := NewView(nil, &fakeWorkbench{}, 0)

	assert.InDelta(t, domain.DefaultThreshold, v.Threshold(), 1e-9)
}

func TestView_ThresholdBounds(t *testing.T) {
	v := NewView(nil, &fakeWorkbench{}, 0.6)

	v.Update(key("+"))
	assert.InDelta(t, 0.65, v.Threshold(), 1e-9)

	for i := 0; i < 20; i++ {
		v.Update(key("+"))
	}
	assert.InDelta(t, domain.MaxThreshold, v.Threshold(), 1e-9)

	for i := 0; i < 30; i++ {
		v.Update(key("-"))
	}
	assert.InDelta(t, domain.MinThreshold, v.Threshold(), 1e-9)
}

func TestView_Import(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdc.txt")
	require.NoError(t, os.WriteFile(path, []byte("Vérifier le total."), 0o600))
	wb := &fakeWorkbench{}
	v := NewView(nil, wb, 0.6)

	v.Update(key("i"))
	require.True(t, v.Capturing())
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(path)})
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, v.Capturing())

	msg, ok := last(t, cmd).(messages.ControlPointsImported)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, domain.MIMETypePlainText, wb.raw.MIMEType)

	v.Update(msg)
	assert.Contains(t, v.View(), "PDC importés: 1")
}

func TestView_ImportEmptyPath(t *testing.T) {
	v := NewView(nil, &fakeWorkbench{}, 0.6)

	assert.Nil(t, v.Import(""))
}

func TestView_MatchUsesThreshold(t *testing.T) {
	wb := &fakeWorkbench{}
	v := NewView(nil, wb, 0.8)

	_, cmd := v.Update(key("m"))
	msg := last(t, cmd).(messages.RulesMatched)

	assert.InDelta(t, 0.8, wb.threshold, 1e-9)
	v.Update(msg)
	assert.Contains(t, v.View(), "0 règles couvertes, 1 non couvertes")
}

func TestView_Build(t *testing.T) {
	wb := &fakeWorkbench{}
	v := NewView(nil, wb, 0.5)
	v.SetAssisted(true)

	_, cmd := v.Update(key("r"))
	last(t, cmd)

	assert.Equal(t, driving.BuildOptions{Threshold: 0.5, Assisted: true}, wb.build)
}

func TestView_BuiltListShowsProvenance(t *testing.T) {
	v := NewView(nil, &fakeWorkbench{}, 0.6)

	v.Update(messages.ControlPointsBuilt{Result: &driving.ControlPointsResult{
		ControlPoints: []domain.ControlPoint{
			{Text: "Vérifier le total.", Origin: domain.OriginImported},
			{Text: "Vérifier que le client paie.", Origin: domain.OriginGenerated},
		},
		Imported:  1,
		Generated: 1,
	}})

	view := v.View()
	assert.Equal(t, 2, v.Count())
	assert.Contains(t, view, "[existant] Vérifier le total.")
	assert.Contains(t, view, "[généré] Vérifier que le client paie.")
	assert.Contains(t, view, "2 PDC: 1 existants, 1 générés")

	_, cmd := v.Update(key("e"))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ExportRequested{Kind: driving.ExportControlPoints}, cmd())
}

func TestView_ResetKeepsImported(t *testing.T) {
	v := NewView(nil, &fakeWorkbench{}, 0.6)
	v.Update(messages.ControlPointsImported{Result: &driving.ImportResult{
		ControlPoints: []domain.ControlPoint{{Text: "p.", Origin: domain.OriginImported}},
	}})
	v.Update(messages.ControlPointsBuilt{Result: &driving.ControlPointsResult{
		ControlPoints: []domain.ControlPoint{{Text: "p.", Origin: domain.OriginImported}},
	}})

	v.Reset()

	assert.Equal(t, 0, v.Count())
	assert.Contains(t, v.View(), "PDC importés: 1")
}

package testcases

import (
	"context"
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

	opts driving.GenerateOptions
}

func (f *fakeWorkbench) GenerateTestCases(_ context.Context, _ string, opts driving.GenerateOptions) (*driving.TestCasesResult, error) {
	f.opts = opts
	return &driving.TestCasesResult{}, nil
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func cases(n int) *driving.TestCasesResult {
	out := make([]domain.TestCase, n)
	for i := range out {
		out[i] = domain.TestCase{
			ID:             domain.TestCaseID(i + 1),
			Type:           domain.TestCaseTypeFor(i == 0),
			PDC:            fmt.Sprintf("Vérifier la règle %d.", i+1),
			Description:    "Contrôle de la règle",
			Steps:          "1. Préparer 2. Exécuter 3. Vérifier",
			ExpectedResult: "La règle est respectée",
		}
	}
	return &driving.TestCasesResult{TestCases: out}
}

func TestView_RunPassesAssisted(t *testing.T) {
	wb := &fakeWorkbench{}
	v := NewView(nil, wb)
	v.SetAssisted(true)

	_, cmd := v.Update(key("r"))
	require.NotNil(t, cmd)
	batch := cmd().(tea.BatchMsg)
	_, ok := batch[1]().(messages.TestCasesGenerated)

	assert.True(t, ok)
	assert.True(t, wb.opts.Assisted)
}

func TestView_RendersTestCases(t *testing.T) {
	v := NewView(nil, &fakeWorkbench{})

	v.Update(messages.TestCasesGenerated{Result: cases(7)})

	view := v.View()
	assert.Equal(t, 7, v.Count())
	assert.Contains(t, view, "CT-001")
	assert.Contains(t, view, "[Manuel]")
	assert.Contains(t, view, "[Auto-généré]")
	assert.Contains(t, view, "Résultat attendu:")
	assert.NotContains(t, view, "CT-006")
	assert.Contains(t, view, "Page 1/2")

	v.Update(key("n"))
	assert.Contains(t, v.View(), "CT-006")
}

func TestView_Export(t *testing.T) {
	v := NewView(nil, &fakeWorkbench{})

	_, cmd := v.Update(key("e"))
	assert.Nil(t, cmd)

	v.Update(messages.TestCasesGenerated{Result: cases(1)})
	_, cmd = v.Update(key("e"))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ExportRequested{Kind: driving.ExportTestCases}, cmd())
}

func TestView_ErrorAndReset(t *testing.T) {
	v := NewView(nil, &fakeWorkbench{})

	v.Update(messages.TestCasesGenerated{Err: domain.ErrNoControlPoints})
	assert.Contains(t, v.View(), domain.ErrNoControlPoints.Error())

	v.Update(messages.TestCasesGenerated{Result: cases(2)})
	v.Reset()
	assert.Equal(t, 0, v.Count())
}

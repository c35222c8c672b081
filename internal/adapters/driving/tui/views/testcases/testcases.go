// Package testcases provides the test case review view.
package testcases

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/components/list"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/keymap"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/messages"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/styles"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
)

// View generates one test case per control point and pages through them.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	workbench driving.WorkbenchService
	ctx       context.Context
	sessionID string
	assisted  bool

	pager *list.Pager
	err   error
}

// NewView creates a test case view.
func NewView(s *styles.Styles, workbench driving.WorkbenchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		keymap:    keymap.DefaultKeyMap(),
		workbench: workbench,
		ctx:       context.Background(),
		pager:     list.NewPager(s, "[r] générer les cas de test"),
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetSession sets the session to work on.
func (v *View) SetSession(id string) {
	v.sessionID = id
}

// SetAssisted selects the text generation service for the next run.
func (v *View) SetAssisted(assisted bool) {
	v.assisted = assisted
}

// Update handles messages for the test case view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.TestCasesGenerated:
		v.err = msg.Err
		if msg.Err == nil {
			v.pager.SetItems(v.render(msg.Result.TestCases))
		}
		return v, nil

	case tea.KeyMsg:
		key := msg.String()
		switch {
		case keymap.Matches(key, v.keymap.Run):
			return v, v.Run()
		case keymap.Matches(key, v.keymap.Export):
			if v.pager.Count() == 0 {
				return v, nil
			}
			return v, func() tea.Msg {
				return messages.ExportRequested{Kind: driving.ExportTestCases}
			}
		}
		var cmd tea.Cmd
		v.pager, cmd = v.pager.Update(msg)
		return v, cmd
	}
	return v, nil
}

// Run starts the generation.
func (v *View) Run() tea.Cmd {
	ctx, workbench, sessionID := v.ctx, v.workbench, v.sessionID
	opts := driving.GenerateOptions{Assisted: v.assisted}
	return tea.Batch(
		messages.Start("Génération des cas de test"),
		func() tea.Msg {
			result, err := workbench.GenerateTestCases(ctx, sessionID, opts)
			return messages.TestCasesGenerated{Result: result, Err: err}
		},
	)
}

func (v *View) render(cases []domain.TestCase) []string {
	items := make([]string, len(cases))
	for i, tc := range cases {
		badge := v.styles.TypeBadge(tc.Type)
		items[i] = fmt.Sprintf("%s %s\n   %s %s\n   %s %s\n   %s %s\n   %s %s\n",
			v.styles.Title.Render(tc.ID), badge,
			v.styles.Muted.Render("PDC:"), tc.PDC,
			v.styles.Muted.Render("Description:"), tc.Description,
			v.styles.Muted.Render("Étapes:"), tc.Steps,
			v.styles.Muted.Render("Résultat attendu:"), tc.ExpectedResult,
		)
	}
	return items
}

// View renders the current page of test cases.
func (v *View) View() string {
	var b strings.Builder

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(v.pager.View())

	if v.pager.Count() > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("[←/→] pages  [e] exporter  [a] mode assisté  [r] relancer"))
	}
	return b.String()
}

// Reset forgets the test cases after the control points change.
func (v *View) Reset() {
	v.pager.SetItems(nil)
	v.err = nil
}

// Count returns the number of test cases shown.
func (v *View) Count() int {
	return v.pager.Count()
}

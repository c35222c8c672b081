// Package rules provides the business rule review view.
package rules

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

// View extracts the rules of the session document and pages through them.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	workbench driving.WorkbenchService
	ctx       context.Context
	sessionID string
	assisted  bool

	pager *list.Pager
	stats *domain.RuleStats
	err   error
}

// NewView creates a rules view.
func NewView(s *styles.Styles, workbench driving.WorkbenchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		keymap:    keymap.DefaultKeyMap(),
		workbench: workbench,
		ctx:       context.Background(),
		pager:     list.NewPager(s, "[r] extraire les règles de gestion"),
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetSession sets the session to extract from.
func (v *View) SetSession(id string) {
	v.sessionID = id
}

// SetAssisted selects the text generation service for the next extraction.
func (v *View) SetAssisted(assisted bool) {
	v.assisted = assisted
}

// Update handles messages for the rules view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.RulesExtracted:
		v.err = msg.Err
		if msg.Err == nil {
			v.pager.SetItems(msg.Result.Rules)
			v.stats = &msg.Result.Stats
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
				return messages.ExportRequested{Kind: driving.ExportRules}
			}
		}
		var cmd tea.Cmd
		v.pager, cmd = v.pager.Update(msg)
		return v, cmd
	}
	return v, nil
}

// Run starts the extraction.
func (v *View) Run() tea.Cmd {
	ctx, workbench, sessionID := v.ctx, v.workbench, v.sessionID
	opts := driving.ExtractOptions{Assisted: v.assisted}
	return tea.Batch(
		messages.Start("Extraction des règles"),
		func() tea.Msg {
			result, err := workbench.ExtractRules(ctx, sessionID, opts)
			return messages.RulesExtracted{Result: result, Err: err}
		},
	)
}

// View renders the statistics and the current page of rules.
func (v *View) View() string {
	var b strings.Builder

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n\n")
	}

	if v.stats != nil {
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf(
			"%d règles, %.1f mots en moyenne", v.stats.Count, v.stats.AverageWords)))
		b.WriteString("\n\n")
	}

	b.WriteString(v.pager.View())

	if v.pager.Count() > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("[←/→] pages  [e] exporter  [a] mode assisté  [r] relancer"))
	}
	return b.String()
}

// Reset forgets the rules after a new document is loaded.
func (v *View) Reset() {
	v.pager.SetItems(nil)
	v.stats = nil
	v.err = nil
}

// Count returns the number of rules shown.
func (v *View) Count() int {
	return v.pager.Count()
}

// Page returns the current 0-based page.
func (v *View) Page() int {
	return v.pager.Page()
}

// Package analysis provides the text analysis view: word statistics,
// top terms and their frequency profile.
package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/keymap"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/messages"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/styles"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
)

const topStep = 5

// View runs the frequency analysis of the session document.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	workbench driving.WorkbenchService
	ctx       context.Context
	sessionID string

	analysis *domain.Analysis
	top      int
	err      error

	width int
}

// NewView creates an analysis view.
func NewView(s *styles.Styles, workbench driving.WorkbenchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		keymap:    keymap.DefaultKeyMap(),
		workbench: workbench,
		ctx:       context.Background(),
		top:       domain.DefaultTopWords,
		width:     80,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetSession sets the session to analyse.
func (v *View) SetSession(id string) {
	v.sessionID = id
}

// Update handles messages for the analysis view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.AnalysisCompleted:
		v.err = msg.Err
		if msg.Err == nil {
			v.analysis = msg.Analysis
		}
		return v, nil

	case tea.KeyMsg:
		key := msg.String()
		switch {
		case keymap.Matches(key, v.keymap.Run):
			return v, v.Run()
		case keymap.Matches(key, v.keymap.Raise):
			v.top = min(v.top+topStep, domain.MaxTopWords)
		case keymap.Matches(key, v.keymap.Lower):
			v.top = max(v.top-topStep, domain.MinTopWords)
		case keymap.Matches(key, v.keymap.Export):
			if v.analysis == nil {
				return v, nil
			}
			return v, func() tea.Msg {
				return messages.ExportRequested{Kind: driving.ExportWordCloud}
			}
		}
	}
	return v, nil
}

// Run starts the analysis.
func (v *View) Run() tea.Cmd {
	ctx, workbench, sessionID := v.ctx, v.workbench, v.sessionID
	return tea.Batch(
		messages.Start("Analyse du texte"),
		func() tea.Msg {
			analysis, err := workbench.Analyze(ctx, sessionID)
			return messages.AnalysisCompleted{Analysis: analysis, Err: err}
		},
	)
}

// View renders the statistics, the sparkline and the top terms.
func (v *View) View() string {
	var b strings.Builder

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n\n")
	}

	if v.analysis == nil {
		b.WriteString(v.styles.Muted.Render("[r] analyser le texte"))
		return b.String()
	}

	freqs := v.analysis.Top(v.top)
	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf(
		"%d mots, %d termes distincts", v.analysis.WordCount, len(v.analysis.Frequencies))))
	b.WriteString("\n\n")

	if len(freqs) > 0 {
		b.WriteString(v.sparkline(freqs))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Top %d", v.top)))
	b.WriteString("\n")
	for i, f := range freqs {
		b.WriteString(fmt.Sprintf("%3d. %-24s %s\n", i+1, f.Term, v.styles.Muted.Render(fmt.Sprint(f.Count))))
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("[+/-] nombre de termes  [e] nuage de mots  [r] relancer"))
	return b.String()
}

func (v *View) sparkline(freqs []domain.TermFrequency) string {
	width := len(freqs)
	if width > v.width-2 {
		width = v.width - 2
	}
	spark := sparkline.New(width, 4)
	for _, f := range freqs {
		spark.Push(float64(f.Count))
	}
	spark.Draw()
	return spark.View()
}

// Reset forgets the analysis after a new document is loaded.
func (v *View) Reset() {
	v.analysis = nil
	v.err = nil
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, _ int) {
	v.width = width
}

// Top returns the number of terms shown.
func (v *View) Top() int {
	return v.top
}

// Analysis returns the last analysis, or nil.
func (v *View) Analysis() *domain.Analysis {
	return v.analysis
}

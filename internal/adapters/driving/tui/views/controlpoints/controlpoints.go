// Package controlpoints provides the control point (PDC) view: import of
// existing points, coverage of the rules and generation of the missing ones.
package controlpoints

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/components/input"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/components/list"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/keymap"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/messages"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/styles"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/normalisers"
)

const thresholdStep = 0.05

// View builds the working control point list.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	workbench driving.WorkbenchService
	ctx       context.Context
	sessionID string
	assisted  bool

	input     *input.PathInput
	threshold float64
	imported  int
	match     *driving.MatchResult
	built     *driving.ControlPointsResult
	pager     *list.Pager
	err       error
}

// NewView creates a control point view starting at the given threshold.
func NewView(s *styles.Styles, workbench driving.WorkbenchService, threshold float64) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if !domain.ValidThreshold(threshold) {
		threshold = domain.DefaultThreshold
	}
	in := input.NewPathInput(s, "PDC existants", "points_de_controle.docx")
	in.Blur()
	return &View{
		styles:    s,
		keymap:    keymap.DefaultKeyMap(),
		workbench: workbench,
		ctx:       context.Background(),
		input:     in,
		threshold: threshold,
		pager:     list.NewPager(s, "[r] générer les points de contrôle"),
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

// SetAssisted selects the text generation service for the next build.
func (v *View) SetAssisted(assisted bool) {
	v.assisted = assisted
}

// Update handles messages for the control point view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ControlPointsImported:
		v.err = msg.Err
		if msg.Err == nil {
			v.imported = len(msg.Result.ControlPoints)
			v.match = nil
			v.clearBuilt()
		}
		return v, nil

	case messages.RulesMatched:
		v.err = msg.Err
		if msg.Err == nil {
			v.match = msg.Result
		}
		return v, nil

	case messages.ControlPointsBuilt:
		v.err = msg.Err
		if msg.Err == nil {
			v.built = msg.Result
			v.pager.SetItems(v.render(msg.Result.ControlPoints))
		}
		return v, nil

	case tea.KeyMsg:
		if v.input.Focused() {
			return v.updateInput(msg)
		}
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) updateInput(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		v.input.Blur()
		return v, v.Import(v.input.Value())
	case tea.KeyEsc:
		v.input.Blur()
		return v, nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Import):
		return v, v.input.Focus()
	case keymap.Matches(key, v.keymap.Match):
		return v, v.Match()
	case keymap.Matches(key, v.keymap.Run):
		return v, v.Build()
	case keymap.Matches(key, v.keymap.Raise):
		v.threshold = min(v.threshold+thresholdStep, domain.MaxThreshold)
		return v, nil
	case keymap.Matches(key, v.keymap.Lower):
		v.threshold = max(v.threshold-thresholdStep, domain.MinThreshold)
		return v, nil
	case keymap.Matches(key, v.keymap.Export):
		if v.pager.Count() == 0 {
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ExportRequested{Kind: driving.ExportControlPoints}
		}
	}
	var cmd tea.Cmd
	v.pager, cmd = v.pager.Update(msg)
	return v, cmd
}

// Import reads the control points of the document at path.
func (v *View) Import(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	ctx, workbench, sessionID := v.ctx, v.workbench, v.sessionID
	return tea.Batch(
		messages.Start("Import des PDC existants"),
		func() tea.Msg {
			raw, err := normalisers.ReadFile(path)
			if err != nil {
				return messages.ControlPointsImported{Err: err}
			}
			result, err := workbench.ImportControlPoints(ctx, sessionID, raw)
			return messages.ControlPointsImported{Result: result, Err: err}
		},
	)
}

// Match scores the rules against the imported control points.
func (v *View) Match() tea.Cmd {
	ctx, workbench, sessionID, threshold := v.ctx, v.workbench, v.sessionID, v.threshold
	return tea.Batch(
		messages.Start("Comparaison règles / PDC"),
		func() tea.Msg {
			result, err := workbench.Match(ctx, sessionID, threshold)
			return messages.RulesMatched{Result: result, Err: err}
		},
	)
}

// Build keeps the imported points and generates the missing ones.
func (v *View) Build() tea.Cmd {
	ctx, workbench, sessionID := v.ctx, v.workbench, v.sessionID
	opts := driving.BuildOptions{Threshold: v.threshold, Assisted: v.assisted}
	return tea.Batch(
		messages.Start("Génération des points de contrôle"),
		func() tea.Msg {
			result, err := workbench.BuildControlPoints(ctx, sessionID, opts)
			return messages.ControlPointsBuilt{Result: result, Err: err}
		},
	)
}

func (v *View) render(pdcs []domain.ControlPoint) []string {
	items := make([]string, len(pdcs))
	for i, p := range pdcs {
		items[i] = v.styles.OriginBadge(p.Origin) + " " + p.Text
	}
	return items
}

// View renders the import field, the coverage summary and the list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.input.View())
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Seuil de similarité: %.2f   PDC importés: %d", v.threshold, v.imported)))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n\n")
	}

	if v.match != nil {
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf(
			"%d règles couvertes, %d non couvertes (seuil %.2f)",
			len(v.match.Covered), len(v.match.Uncovered), v.match.Threshold)))
		b.WriteString("\n\n")
	}

	if v.built != nil {
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf(
			"%d PDC: %d existants, %d générés", len(v.built.ControlPoints), v.built.Imported, v.built.Generated)))
		b.WriteString("\n\n")
	}

	b.WriteString(v.pager.View())
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("[i] importer  [m] comparer  [+/-] seuil  [r] générer  [e] exporter"))
	return b.String()
}

func (v *View) clearBuilt() {
	v.built = nil
	v.pager.SetItems(nil)
}

// Reset forgets the coverage and the built list after the rules or the
// document change. Imported points survive, as in the session.
func (v *View) Reset() {
	v.match = nil
	v.err = nil
	v.clearBuilt()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, _ int) {
	v.input.SetWidth(width)
}

// Capturing reports whether keystrokes go to the path input.
func (v *View) Capturing() bool {
	return v.input.Focused()
}

// Threshold returns the current similarity threshold.
func (v *View) Threshold() float64 {
	return v.threshold
}

// Count returns the number of control points shown.
func (v *View) Count() int {
	return v.pager.Count()
}

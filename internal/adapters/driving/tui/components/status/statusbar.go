// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/keymap"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady   State = "ready"
	StateWorking State = "working"
	StateDone    State = "done"
	StateWarning State = "warning"
	StateError   State = "error"
)

// Bar displays the stage in progress, its outcome and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	spinner  spinner.Model
	state    State
	message  string
	warnings []string
	assisted bool
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Subtitle

	return &Bar{
		styles:  s,
		keymap:  km,
		spinner: sp,
		state:   StateReady,
		width:   80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update advances the spinner while a stage is running.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok && s.state == StateWorking {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

// View renders the status bar, with one line per warning above it.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	bar := s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)

	if len(s.warnings) == 0 {
		return bar
	}
	lines := make([]string, 0, len(s.warnings)+1)
	for _, w := range s.warnings {
		lines = append(lines, s.styles.Warning.Render("⚠ "+w))
	}
	return strings.Join(append(lines, bar), "\n")
}

func (s *Bar) renderLeft() string {
	mode := ""
	if s.assisted {
		mode = s.styles.Subtitle.Render("[assisté] ")
	}

	switch s.state {
	case StateWorking:
		return mode + s.spinner.View() + " " + s.styles.Normal.Render(s.message+"...")
	case StateError:
		if s.message != "" {
			return mode + s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return mode + s.styles.Error.Render("Error")
	case StateWarning:
		return mode + s.styles.Warning.Render(s.message)
	case StateDone:
		return mode + s.styles.Success.Render(s.message)
	case StateReady:
	}
	return mode + s.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// Start shows the spinner with a label and returns the tick command.
func (s *Bar) Start(label string) tea.Cmd {
	s.state = StateWorking
	s.message = label
	s.warnings = nil
	return s.spinner.Tick
}

// Finish records the outcome of a stage. Warnings switch the bar to
// StateWarning.
func (s *Bar) Finish(message string, warnings []string) {
	s.message = message
	s.warnings = warnings
	if len(warnings) > 0 {
		s.state = StateWarning
		return
	}
	s.state = StateDone
}

// Fail records a stage error.
func (s *Bar) Fail(err error) {
	s.state = StateError
	s.message = err.Error()
	s.warnings = nil
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// Warnings returns the warnings of the last stage.
func (s *Bar) Warnings() []string {
	return s.warnings
}

// SetAssisted shows whether the text generation service is in use.
func (s *Bar) SetAssisted(assisted bool) {
	s.assisted = assisted
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.warnings = nil
}

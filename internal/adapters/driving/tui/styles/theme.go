// Package styles holds the TUI palette and the lipgloss styles built
// from it.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
)

// Theme is the palette. Primary matches the blue of the exported Word
// headings.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns the dark palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    "#2B579A",
		Secondary:  "#06B6D4",
		Foreground: "#CDD6F4",
		Muted:      "#6C7086",
		Success:    "#A6E3A1",
		Warning:    "#F9E2AF",
		Error:      "#F38BA8",
		Border:     "#45475A",
		Bar:        "#181825",
	}
}

// Styles are built once per App and shared by every view.
type Styles struct {
	theme *Theme

	Title, Subtitle lipgloss.Style
	Normal, Muted   lipgloss.Style
	Selected        lipgloss.Style

	Error, Success, Warning lipgloss.Style

	Tab, ActiveTab lipgloss.Style

	// Imported marks what came from the analyst's documents, Generated
	// what testgen produced.
	Imported, Generated lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style
	Border     lipgloss.Style
}

// NewStyles builds the styles of theme, or of DefaultTheme when nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	boxed := lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(theme.Border)

	return &Styles{
		theme: theme,

		Title:    fg(theme.Primary).Bold(true),
		Subtitle: fg(theme.Secondary).Bold(true),
		Normal:   fg(theme.Foreground),
		Muted:    fg(theme.Muted),
		Selected: fg(theme.Foreground).Background(theme.Primary).Bold(true),

		Error:   fg(theme.Error),
		Success: fg(theme.Success),
		Warning: fg(theme.Warning),

		Tab:       fg(theme.Muted).Padding(0, 2),
		ActiveTab: fg(theme.Foreground).Background(theme.Primary).Bold(true).Padding(0, 2),

		Imported:  fg(theme.Secondary),
		Generated: fg(theme.Success),

		InputField: boxed.Padding(0, 1),
		StatusBar:  fg(theme.Muted).Background(theme.Bar).Padding(0, 1),
		Help:       fg(theme.Muted),
		Border:     boxed,
	}
}

// DefaultStyles returns NewStyles(DefaultTheme()).
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// OriginBadge renders "[existant]" or "[généré]", and nothing for an
// unknown origin.
func (s *Styles) OriginBadge(o domain.Origin) string {
	if !o.IsValid() {
		return ""
	}
	if o == domain.OriginImported {
		return s.Imported.Render("[existant]")
	}
	return s.Generated.Render("[généré]")
}

// TypeBadge renders the test case type, coloured like the provenance of
// the control point behind it.
func (s *Styles) TypeBadge(t domain.TestCaseType) string {
	style := s.Generated
	if t == domain.TestCaseManual {
		style = s.Imported
	}
	return style.Render("[" + t.String() + "]")
}

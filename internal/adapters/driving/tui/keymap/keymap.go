// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// NextTab moves to the next pipeline tab.
	NextTab key.Binding

	// PrevTab moves to the previous pipeline tab.
	PrevTab key.Binding

	// NextPage shows the next page of a list.
	NextPage key.Binding

	// PrevPage shows the previous page of a list.
	PrevPage key.Binding

	// Run starts the stage of the current tab.
	Run key.Binding

	// Assisted toggles the text generation service for the next stages.
	Assisted key.Binding

	// Export writes the current tab's output as a file.
	Export key.Binding

	// Import focuses the control point document path.
	Import key.Binding

	// Match compares the rules with the imported control points.
	Match key.Binding

	// Raise increases the matching threshold.
	Raise key.Binding

	// Lower decreases the matching threshold.
	Lower key.Binding

	// Select confirms an input.
	Select key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/p", "previous page"),
		),
		Run: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "run"),
		),
		Assisted: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "assisted mode"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "import"),
		),
		Match: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "match"),
		),
		Raise: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "raise threshold"),
		),
		Lower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "lower threshold"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Run, k.Help, k.Quit}
}

// ListHelp returns keybindings for the paginated list tabs.
func (k *KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.Run, k.PrevPage, k.NextPage, k.Export, k.Assisted}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Back},
		{k.Run, k.Assisted, k.Export},
		{k.PrevPage, k.NextPage},
		{k.Import, k.Match, k.Raise, k.Lower},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}

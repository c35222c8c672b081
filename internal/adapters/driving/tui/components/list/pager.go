// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/keymap"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/styles"
)

// PageSize is the number of items shown per page.
const PageSize = 5

// Pager shows pre-rendered items PageSize at a time.
type Pager struct {
	items  []string
	page   int
	styles *styles.Styles
	keymap *keymap.KeyMap
	empty  string
}

// NewPager creates a pager that shows empty when it has no items.
func NewPager(s *styles.Styles, empty string) *Pager {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Pager{
		styles: s,
		keymap: keymap.DefaultKeyMap(),
		empty:  empty,
	}
}

// Update flips pages.
func (p *Pager) Update(msg tea.Msg) (*Pager, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keymap.Matches(msg.String(), p.keymap.NextPage):
			p.NextPage()
		case keymap.Matches(msg.String(), p.keymap.PrevPage):
			p.PrevPage()
		}
	}
	return p, nil
}

// View renders the current page and its footer. Items are numbered from 1
// across pages.
func (p *Pager) View() string {
	if len(p.items) == 0 {
		return p.styles.Muted.Render(p.empty)
	}

	start := p.page * PageSize
	end := start + PageSize
	if end > len(p.items) {
		end = len(p.items)
	}

	lines := make([]string, 0, end-start+2)
	for i := start; i < end; i++ {
		num := p.styles.Subtitle.Render(fmt.Sprintf("%d.", i+1))
		lines = append(lines, num+" "+p.items[i])
	}
	lines = append(lines, "", p.styles.Muted.Render(
		fmt.Sprintf("Page %d/%d  (%d)", p.page+1, p.Pages(), len(p.items)),
	))
	return strings.Join(lines, "\n")
}

// SetItems replaces the items and returns to the first page.
func (p *Pager) SetItems(items []string) {
	p.items = items
	p.page = 0
}

// Count returns the number of items.
func (p *Pager) Count() int {
	return len(p.items)
}

// Page returns the current 0-based page.
func (p *Pager) Page() int {
	return p.page
}

// Pages returns the number of pages, at least one.
func (p *Pager) Pages() int {
	if len(p.items) == 0 {
		return 1
	}
	return (len(p.items) + PageSize - 1) / PageSize
}

// NextPage moves forward, stopping at the last page.
func (p *Pager) NextPage() {
	if p.page < p.Pages()-1 {
		p.page++
	}
}

// PrevPage moves back, stopping at the first page.
func (p *Pager) PrevPage() {
	if p.page > 0 {
		p.page--
	}
}

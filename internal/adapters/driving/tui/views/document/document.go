// Package document provides the view that loads the requirement document.
package document

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/components/input"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/messages"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/styles"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/normalisers"
)

// ErrNoPath is returned when enter is pressed on an empty path.
var ErrNoPath = errors.New("enter the path of a PDF, Word or text document")

// View loads a document into the session and shows its preview.
type View struct {
	styles    *styles.Styles
	workbench driving.WorkbenchService
	ctx       context.Context
	sessionID string

	input    *input.PathInput
	document *domain.Document
	err      error

	width  int
	height int
}

// NewView creates a document view.
func NewView(s *styles.Styles, workbench driving.WorkbenchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		workbench: workbench,
		ctx:       context.Background(),
		input:     input.NewPathInput(s, "Fichier", "cahier_des_charges.pdf"),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetSession sets the session documents are loaded into.
func (v *View) SetSession(id string) {
	v.sessionID = id
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the document view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.DocumentLoaded:
		v.err = msg.Err
		if msg.Err == nil {
			v.document = msg.Document
			v.input.Blur()
		}
		return v, nil

	case tea.KeyMsg:
		if !v.input.Focused() {
			switch msg.String() {
			case "enter", "r":
				return v, v.input.Focus()
			}
			return v, nil
		}

		switch msg.Type {
		case tea.KeyEnter:
			return v, v.Load(v.input.Value())
		case tea.KeyEsc:
			v.input.Blur()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// Load extracts the file at path into the session.
func (v *View) Load(path string) tea.Cmd {
	if path == "" {
		v.err = ErrNoPath
		return nil
	}
	v.input.SetValue(path)

	ctx, workbench, sessionID := v.ctx, v.workbench, v.sessionID
	return tea.Batch(
		messages.Start("Extraction du texte"),
		func() tea.Msg {
			raw, err := normalisers.ReadFile(path)
			if err != nil {
				return messages.DocumentLoaded{Err: err}
			}
			doc, err := workbench.LoadDocument(ctx, sessionID, raw)
			return messages.DocumentLoaded{Document: doc, Err: err}
		},
	)
}

// View renders the path input and the preview of the loaded document.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n\n")
	}

	if v.document == nil {
		b.WriteString(v.styles.Muted.Render("[enter] charger le document"))
		return b.String()
	}

	b.WriteString(v.styles.Subtitle.Render(v.document.Title))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%d caractères, %d mots",
		utf8.RuneCountInString(v.document.Content), len(strings.Fields(v.document.Content)))))
	b.WriteString("\n\n")

	preview := lipgloss.NewStyle().Width(v.width - 4).MaxHeight(v.previewHeight()).
		Render(v.document.Preview())
	b.WriteString(v.styles.Normal.Render(preview))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("[r] autre document  [tab] analyse"))
	return b.String()
}

func (v *View) previewHeight() int {
	h := v.height - 14
	if h < 3 {
		return 3
	}
	return h
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
}

// Capturing reports whether keystrokes go to the path input.
func (v *View) Capturing() bool {
	return v.input.Focused()
}

// Document returns the loaded document, or nil.
func (v *View) Document() *domain.Document {
	return v.document
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

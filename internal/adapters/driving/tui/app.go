package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/components/status"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/keymap"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/messages"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/styles"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/views/analysis"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/views/controlpoints"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/views/document"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/views/rules"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui/views/testcases"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusBar *status.Bar

	documentView      *document.View
	analysisView      *analysis.View
	rulesView         *rules.View
	controlPointsView *controlpoints.View
	testCasesView     *testcases.View

	// sessionID is the workbench session every tab works on.
	sessionID string

	// initialPath is loaded as soon as the session is open.
	initialPath string

	// outputDir receives exported files.
	outputDir string
	writeFile func(path string, data []byte) error

	assisted bool

	// currentView tracks which tab is active; previousView is restored
	// when the help view closes.
	currentView  messages.ViewType
	previousView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	threshold := domain.DefaultThreshold
	if ports.Settings != nil {
		if settings, err := ports.Settings.Get(); err == nil {
			threshold = settings.Matching.Threshold
		} else {
			logger.Debug("tui: reading settings: %v", err)
		}
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:             ports,
		ctx:               context.Background(),
		styles:            s,
		keymap:            km,
		statusBar:         status.NewBar(s, km),
		documentView:      document.NewView(s, ports.Workbench),
		analysisView:      analysis.NewView(s, ports.Workbench),
		rulesView:         rules.NewView(s, ports.Workbench),
		controlPointsView: controlpoints.NewView(s, ports.Workbench, threshold),
		testCasesView:     testcases.NewView(s, ports.Workbench),
		outputDir:         ".",
		writeFile:         writeFile,
		currentView:       messages.ViewDocument,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.documentView.WithContext(ctx)
	a.analysisView.WithContext(ctx)
	a.rulesView.WithContext(ctx)
	a.controlPointsView.WithContext(ctx)
	a.testCasesView.WithContext(ctx)
	return a
}

// WithDocument loads path once the session is open.
func (a *App) WithDocument(path string) *App {
	a.initialPath = path
	return a
}

// WithOutputDir sets the directory exported files are written to.
func (a *App) WithOutputDir(dir string) *App {
	a.outputDir = dir
	return a
}

// Init implements tea.Model.
// It opens the session and starts the input cursor.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("testgen"),
		a.documentView.Init(),
		a.startSession(),
	)
}

func (a *App) startSession() tea.Cmd {
	ctx, workbench := a.ctx, a.ports.Workbench
	return func() tea.Msg {
		session, err := workbench.NewSession(ctx)
		if err != nil {
			return messages.SessionStarted{Err: err}
		}
		return messages.SessionStarted{SessionID: session.ID}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		a.statusBar, cmd = a.statusBar.Update(msg)
		return a, cmd

	case messages.SessionStarted:
		if msg.Err != nil {
			a.fail(msg.Err)
			return a, nil
		}
		a.setSession(msg.SessionID)
		if a.initialPath != "" {
			return a, a.documentView.Load(a.initialPath)
		}
		return a, nil

	case messages.WorkStarted:
		return a, a.statusBar.Start(msg.Label)

	case messages.DocumentLoaded:
		a.documentView, cmd = a.documentView.Update(msg)
		if msg.Err != nil {
			a.fail(msg.Err)
			return a, cmd
		}
		a.analysisView.Reset()
		a.rulesView.Reset()
		a.controlPointsView.Reset()
		a.testCasesView.Reset()
		a.finish(fmt.Sprintf("Document chargé: %s", msg.Document.Title), nil)
		return a, cmd

	case messages.AnalysisCompleted:
		a.analysisView, cmd = a.analysisView.Update(msg)
		if msg.Err != nil {
			a.fail(msg.Err)
			return a, cmd
		}
		a.finish(fmt.Sprintf("%d termes distincts", len(msg.Analysis.Frequencies)), nil)
		return a, cmd

	case messages.RulesExtracted:
		a.rulesView, cmd = a.rulesView.Update(msg)
		if msg.Err != nil {
			a.fail(msg.Err)
			return a, cmd
		}
		a.controlPointsView.Reset()
		a.testCasesView.Reset()
		a.finish(fmt.Sprintf("%d règles extraites", len(msg.Result.Rules)), msg.Result.Warnings)
		return a, cmd

	case messages.ControlPointsImported:
		a.controlPointsView, cmd = a.controlPointsView.Update(msg)
		if msg.Err != nil {
			a.fail(msg.Err)
			return a, cmd
		}
		a.testCasesView.Reset()
		a.finish(fmt.Sprintf("%d PDC importés", len(msg.Result.ControlPoints)), nil)
		return a, cmd

	case messages.RulesMatched:
		a.controlPointsView, cmd = a.controlPointsView.Update(msg)
		if msg.Err != nil {
			a.fail(msg.Err)
			return a, cmd
		}
		a.finish(fmt.Sprintf("%d règles non couvertes", len(msg.Result.Uncovered)), nil)
		return a, cmd

	case messages.ControlPointsBuilt:
		a.controlPointsView, cmd = a.controlPointsView.Update(msg)
		if msg.Err != nil {
			a.fail(msg.Err)
			return a, cmd
		}
		a.testCasesView.Reset()
		a.finish(fmt.Sprintf("%d points de contrôle", len(msg.Result.ControlPoints)), msg.Result.Warnings)
		return a, cmd

	case messages.TestCasesGenerated:
		a.testCasesView, cmd = a.testCasesView.Update(msg)
		if msg.Err != nil {
			a.fail(msg.Err)
			return a, cmd
		}
		a.finish(fmt.Sprintf("%d cas de test", len(msg.Result.TestCases)), msg.Result.Warnings)
		return a, cmd

	case messages.ExportRequested:
		return a, tea.Batch(a.statusBar.Start("Export"), a.export(msg.Kind))

	case messages.Exported:
		if msg.Err != nil {
			a.fail(msg.Err)
			return a, nil
		}
		a.finish("Exporté: "+msg.Path, nil)
		return a, nil

	case messages.ViewChanged:
		a.switchTo(msg.View)
		return a, nil

	case messages.ErrorOccurred:
		a.fail(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.currentView == messages.ViewHelp {
		if keymap.Matches(key, a.keymap.Back) || keymap.Matches(key, a.keymap.Help) {
			a.currentView = a.previousView
		}
		if key == "q" {
			return a, tea.Quit
		}
		return a, nil
	}

	switch {
	case keymap.Matches(key, a.keymap.NextTab):
		a.switchTo(a.nextTab(1))
		return a, nil
	case keymap.Matches(key, a.keymap.PrevTab):
		a.switchTo(a.nextTab(-1))
		return a, nil
	}

	if a.capturing() {
		return a.forwardKey(msg)
	}

	switch {
	case keymap.Matches(key, a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(key, a.keymap.Help):
		a.previousView = a.currentView
		a.currentView = messages.ViewHelp
		return a, nil
	case keymap.Matches(key, a.keymap.Assisted):
		a.setAssisted(!a.assisted)
		return a, nil
	}

	return a.forwardKey(msg)
}

func (a *App) forwardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewDocument:
		a.documentView, cmd = a.documentView.Update(msg)
	case messages.ViewAnalysis:
		a.analysisView, cmd = a.analysisView.Update(msg)
	case messages.ViewRules:
		a.rulesView, cmd = a.rulesView.Update(msg)
	case messages.ViewControlPoints:
		a.controlPointsView, cmd = a.controlPointsView.Update(msg)
	case messages.ViewTestCases:
		a.testCasesView, cmd = a.testCasesView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

func (a *App) capturing() bool {
	switch a.currentView {
	case messages.ViewDocument:
		return a.documentView.Capturing()
	case messages.ViewControlPoints:
		return a.controlPointsView.Capturing()
	default:
		return false
	}
}

func (a *App) nextTab(step int) messages.ViewType {
	n := len(messages.Tabs)
	for i, v := range messages.Tabs {
		if v == a.currentView {
			return messages.Tabs[(i+step+n)%n]
		}
	}
	return messages.ViewDocument
}

func (a *App) switchTo(view messages.ViewType) {
	if view == messages.ViewHelp {
		a.previousView = a.currentView
	}
	a.currentView = view
}

func (a *App) setSession(id string) {
	a.sessionID = id
	a.documentView.SetSession(id)
	a.analysisView.SetSession(id)
	a.rulesView.SetSession(id)
	a.controlPointsView.SetSession(id)
	a.testCasesView.SetSession(id)
}

func (a *App) setAssisted(assisted bool) {
	a.assisted = assisted
	a.statusBar.SetAssisted(assisted)
	a.rulesView.SetAssisted(assisted)
	a.controlPointsView.SetAssisted(assisted)
	a.testCasesView.SetAssisted(assisted)
}

func (a *App) finish(message string, warnings []string) {
	a.err = nil
	a.statusBar.Finish(message, warnings)
}

func (a *App) fail(err error) {
	a.err = err
	a.statusBar.Fail(err)
}

// export renders one output and writes it under the default file name.
func (a *App) export(kind driving.ExportKind) tea.Cmd {
	ctx, workbench, sessionID := a.ctx, a.ports.Workbench, a.sessionID
	dir, write := a.outputDir, a.writeFile
	return func() tea.Msg {
		if sessionID == "" {
			return messages.Exported{Err: ErrNoSession}
		}
		out, err := workbench.Export(ctx, sessionID, kind)
		if err != nil {
			return messages.Exported{Err: err}
		}
		path := filepath.Join(dir, out.FileName)
		if err := write(path, out.Content); err != nil {
			return messages.Exported{Err: fmt.Errorf("write %s: %w", path, err)}
		}
		return messages.Exported{Path: path}
	}
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o600)
}

// View implements tea.Model.
// It renders the tab strip, the active tab and the status bar.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewDocument:
		body = a.documentView.View()
	case messages.ViewAnalysis:
		body = a.analysisView.View()
	case messages.ViewRules:
		body = a.rulesView.View()
	case messages.ViewControlPoints:
		body = a.controlPointsView.View()
	case messages.ViewTestCases:
		body = a.testCasesView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	}

	return a.viewTabs() + "\n\n" + body + "\n\n" + a.statusBar.View()
}

func (a *App) viewTabs() string {
	tabs := make([]string, 0, len(messages.Tabs)+1)
	tabs = append(tabs, a.styles.Title.Render("testgen")+"  ")
	for _, v := range messages.Tabs {
		if v == a.currentView {
			tabs = append(tabs, a.styles.ActiveTab.Render(v.Title()))
			continue
		}
		tabs = append(tabs, a.styles.Tab.Render(v.Title()))
	}
	return strings.Join(tabs, "")
}

// viewHelp renders the help view from the keymap.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-12s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Muted.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SessionID returns the workbench session of the app.
func (a *App) SessionID() string {
	return a.sessionID
}

// Assisted reports whether the text generation service is selected.
func (a *App) Assisted() bool {
	return a.assisted
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.statusBar.SetWidth(width)
	a.documentView.SetDimensions(width, height)
	a.analysisView.SetDimensions(width, height)
	a.controlPointsView.SetDimensions(width, height)
}

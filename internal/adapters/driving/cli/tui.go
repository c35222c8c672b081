package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/tui"
)

var tuiOutputDir string

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [document]",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Each tab is one stage of the pipeline: document, analysis, rules,
control points (PDC) and test cases. Lists are shown 5 items per page.
When a document path is given, it is loaded on start.

Controls:
  tab/shift+tab  Next / previous tab
  r              Run the stage of the tab
  a              Toggle assisted mode (text generation service)
  ←/→            Previous / next page
  e              Export the tab's output
  ?              Toggle help
  q              Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiOutputDir, "output-dir", "o", ".", "directory exported files are written to")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if err := requireWorkbench(); err != nil {
		return err
	}

	app, err := tui.NewApp(&tui.Ports{
		Workbench: workbenchService,
		Settings:  settingsService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context()).WithOutputDir(tuiOutputDir)
	if len(args) == 1 {
		app.WithDocument(args[0])
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// Package cli implements the testgen command-line interface.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/logger"
)

// version is set by SetVersion from main.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
	noConfig  bool
)

// Options are the global flags handed to the Builder.
type Options struct {
	ConfigDir string
	NoConfig  bool
	Verbose   bool
}

// Services are the application services the commands drive.
type Services struct {
	Workbench driving.WorkbenchService
	Settings  driving.SettingsService

	// Warnings report degraded capabilities found while wiring, such as
	// an unreachable LLM or a missing linguistic model.
	Warnings []string

	// Close releases adapter resources. May be nil.
	Close func() error
}

// Builder wires the services once the global flags are parsed.
type Builder func(opts Options) (*Services, error)

var (
	builder          Builder
	services         *Services
	workbenchService driving.WorkbenchService
	settingsService  driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "testgen",
	Short: "Business rule, control point and test case generator",
	Long: `testgen extracts business rules from requirement documents (PDF, Word,
text), matches them against existing control points (PDC), generates the
missing control points and one test case per control point, and exports
each list as a Word document.

Text generation services (Azure OpenAI, OpenAI, Anthropic, Ollama) are
optional; without one, every stage falls back to its heuristics.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if services != nil && services.Close != nil {
			return services.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.testgen)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "ignore the configuration file and use defaults")
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// SetBuilder registers the function that wires the services.
func SetBuilder(b Builder) {
	builder = b
}

// SetServices installs already wired services, bypassing the builder.
func SetServices(s *Services) {
	services = s
	if s == nil {
		workbenchService, settingsService = nil, nil
		return
	}
	workbenchService = s.Workbench
	settingsService = s.Settings
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if services != nil || builder == nil {
		return nil
	}

	s, err := builder(Options{ConfigDir: configDir, NoConfig: noConfig, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	SetServices(s)
	for _, w := range s.Warnings {
		logger.Warn("%s", w)
	}
	return nil
}

func requireWorkbench() error {
	if workbenchService == nil {
		return errors.New("workbench service not configured")
	}
	return nil
}

func requireSettings() error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	return nil
}

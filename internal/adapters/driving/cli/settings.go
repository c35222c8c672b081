package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/normalisers/pdf"
)

// pdfAvailable is swapped by tests.
var pdfAvailable = pdf.CheckAvailable

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the text generation provider, the linguistic model
and the matching threshold.

Use subcommands to change one value or run the interactive wizard.
AZURE_OPENAI_KEY, AZURE_OPENAI_ENDPOINT, DEPLOYMENT_NAME and API_VERSION
(environment or .env file) override the stored LLM settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one setting",
	Long: `Set one setting by its configuration key, for example:

  testgen settings set matching.threshold 0.7
  testgen settings set nlp.model none`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

var settingsLLMCmd = &cobra.Command{
	Use:   "llm",
	Short: "Configure LLM provider",
	Long:  `Configure the text generation provider used by the --assisted modes.`,
	RunE:  runSettingsLLM,
}

var settingsTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the LLM connection",
	Long:  `Send a minimal request to the configured text generation provider.`,
	RunE:  runSettingsTest,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	settingsCmd.AddCommand(settingsLLMCmd)
	settingsCmd.AddCommand(settingsTestCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	// LLM settings
	cmd.Println("[LLM]")
	llm := settings.LLM
	if llm.Provider == "" {
		cmd.Println("  Provider: (none)")
	} else {
		cmd.Printf("  Provider: %s\n", llm.Provider.Description())
		if llm.Provider == domain.AIProviderAzure {
			cmd.Printf("  Deployment: %s\n", llm.Model)
			cmd.Printf("  API Version: %s\n", llm.APIVersion)
		} else {
			cmd.Printf("  Model: %s\n", llm.Model)
		}
		if llm.BaseURL != "" {
			cmd.Printf("  Endpoint: %s\n", llm.BaseURL)
		}
		if llm.Provider.RequiresAPIKey() {
			if llm.APIKey != "" {
				cmd.Printf("  API Key: %s\n", maskAPIKey(llm.APIKey))
			} else {
				cmd.Printf("  API Key: (not set)\n")
			}
		}
	}
	cmd.Printf("  Temperature: %.1f\n", llm.Temperature)
	cmd.Printf("  Max Tokens: %d\n", llm.MaxTokens)
	status := "configured"
	if !llm.IsConfigured() {
		status = "not configured (assisted modes fall back to heuristics)"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	// Linguistic model
	cmd.Println("[NLP]")
	cmd.Printf("  Model: %s\n", settings.NLP.Model)
	cmd.Printf("  Min Word Length: %d\n", settings.NLP.MinWordLength)
	cmd.Println()

	cmd.Println("[Documents]")
	if err := pdfAvailable(); err != nil {
		cmd.Printf("  PDF: %v\n", err)
		for _, line := range strings.Split(pdf.InstallInstructions(), "\n") {
			cmd.Printf("    %s\n", strings.TrimSpace(line))
		}
	} else {
		cmd.Println("  PDF: pdftotext found")
	}
	cmd.Println()

	cmd.Println("[Matching]")
	cmd.Printf("  Threshold: %.2f\n", settings.Matching.Threshold)
	cmd.Println()

	cmd.Println("[Generation]")
	if settings.Generation.Seed == 0 {
		cmd.Println("  Seed: (random)")
	} else {
		cmd.Printf("  Seed: %d\n", settings.Generation.Seed)
	}
	cmd.Println()

	// Validation
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'testgen settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}
	if err := settingsService.SetValue(args[0], args[1]); err != nil {
		return err
	}
	value := args[1]
	if args[0] == "llm.api_key" {
		value = maskAPIKey(value)
	}
	cmd.Printf("%s = %s\n", args[0], value)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	cmd.Println("testgen Settings Wizard")
	cmd.Println("=======================")
	cmd.Println()

	reader := bufio.NewReader(os.Stdin)

	// Step 1: LLM provider
	cmd.Println("Step 1: Text Generation Provider")
	cmd.Println("--------------------------------")
	cmd.Print("Configure a provider now? [Y/n]: ")
	if answer := strings.ToLower(readLine(reader)); answer == "" || answer == "y" || answer == "yes" {
		if err := configureLLMProvider(cmd, reader); err != nil {
			return err
		}
	} else {
		cmd.Println("Skipped. Assisted modes will fall back to heuristics.")
		cmd.Println()
	}

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	// Step 2: Linguistic model
	cmd.Println("Step 2: Linguistic Model")
	cmd.Println("------------------------")
	cmd.Println("  1. French (fr)")
	cmd.Println("  2. None (disables text cleaning and verb detection)")
	defaultChoice := 1
	if !settings.NLP.Enabled() {
		defaultChoice = 2
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultChoice)
	if parseChoice(readLine(reader), 2, defaultChoice) == 1 {
		settings.NLP.Model = domain.LanguageModelFrench
	} else {
		settings.NLP.Model = domain.LanguageModelNone
	}
	cmd.Println()

	// Step 3: Matching threshold
	cmd.Println("Step 3: Matching Threshold")
	cmd.Println("--------------------------")
	cmd.Printf("Similarity from which a rule counts as covered [%.2f]: ", settings.Matching.Threshold)
	if input := readLine(reader); input != "" {
		t, err := strconv.ParseFloat(strings.ReplaceAll(input, ",", "."), 64)
		if err != nil || !domain.ValidThreshold(t) {
			return fmt.Errorf("%w: threshold must be within [%.1f, %.1f]",
				domain.ErrInvalidInput, domain.MinThreshold, domain.MaxThreshold)
		}
		settings.Matching.Threshold = t
	}
	cmd.Println()

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	// Final validation
	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}

	return nil
}

func runSettingsLLM(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	return configureLLMProvider(cmd, reader)
}

func runSettingsTest(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	cmd.Print("Testing LLM connection... ")
	if err := settingsService.ValidateLLMConfig(); err != nil {
		cmd.Println("FAILED")
		return err
	}
	cmd.Println("OK")
	return nil
}

func configureLLMProvider(cmd *cobra.Command, reader *bufio.Reader) error {
	cmd.Println("Select LLM Provider")
	providers := domain.AllLLMProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	selectedProvider := providers[idx-1]

	// Get model, the deployment name for Azure
	defaults := domain.DefaultLLMModels()
	defaultModel := defaults[selectedProvider]
	label := "model name"
	if selectedProvider == domain.AIProviderAzure {
		label = "deployment name"
	}
	cmd.Printf("Enter %s [%s]: ", label, defaultModel)
	model := readLine(reader)
	if model == "" {
		model = defaultModel
	}

	var baseURL string
	if selectedProvider.RequiresEndpoint() {
		cmd.Print("Enter endpoint (https://<resource>.openai.azure.com): ")
		baseURL = readLine(reader)
		if baseURL == "" {
			return errors.New("endpoint is required for this provider")
		}
	} else if selectedProvider.IsLocal() {
		cmd.Print("Enter base URL [http://localhost:11434]: ")
		baseURL = readLine(reader)
	}

	// Get API key if needed
	var apiKey string
	if selectedProvider.RequiresAPIKey() {
		cmd.Print("Enter API key: ")
		apiKey = readPassword(reader)
		cmd.Println()
		if apiKey == "" {
			return errors.New("API key is required for this provider")
		}
	}

	if err := settingsService.SetLLMProvider(selectedProvider, model, apiKey, baseURL); err != nil {
		return fmt.Errorf("failed to configure LLM provider: %w", err)
	}

	// Validate the configuration by pinging the service
	cmd.Print("Validating configuration... ")
	if err := settingsService.ValidateLLMConfig(); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		cmd.Println("The settings were saved; fix them and run 'testgen settings test'.")
		cmd.Println()
		return nil
	}
	cmd.Println("OK")

	cmd.Printf("LLM provider configured: %s (%s)\n\n", selectedProvider.Description(), model)
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// readPassword reads without echo on a terminal, else a plain line.
func readPassword(reader *bufio.Reader) string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	return readLine(reader)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

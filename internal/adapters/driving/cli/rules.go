package cli

import (
	"github.com/spf13/cobra"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
)

var (
	rulesAssisted bool
	rulesPage     int
	rulesJSON     bool
	rulesExport   bool
	rulesOutput   string
)

var rulesCmd = &cobra.Command{
	Use:   "rules <file>",
	Short: "Extract business rules from a document",
	Long: `Find the business rules of a requirement document.

By default rules are located with trigger-phrase patterns (conditions,
obligations, consequences, permissions) plus, when the linguistic model is
loaded, keyword-bearing sentences. With --assisted the text is sent to the
configured text generation service instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().BoolVarP(&rulesAssisted, "assisted", "a", false, "use the text generation service")
	rulesCmd.Flags().IntVarP(&rulesPage, "page", "p", 0, "show one page of 5 rules (0 = all)")
	rulesCmd.Flags().BoolVar(&rulesJSON, "json", false, "output as JSON")
	exportFlags(rulesCmd, &rulesExport, &rulesOutput, driving.ExportRules)
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	if err := requireWorkbench(); err != nil {
		return err
	}

	ctx := cmd.Context()
	session, _, err := newSessionWithDocument(ctx, args[0])
	if err != nil {
		return err
	}

	result, err := workbenchService.ExtractRules(ctx, session.ID, driving.ExtractOptions{Assisted: rulesAssisted})
	if err != nil {
		return err
	}
	printWarnings(cmd, result.Warnings)

	if shouldExport(cmd, rulesExport) && len(result.Rules) > 0 {
		if err := exportTo(cmd, session.ID, driving.ExportRules, rulesOutput); err != nil {
			return err
		}
	}

	if rulesJSON {
		return outputJSON(cmd, result)
	}
	return printRules(cmd, result, rulesPage)
}

func printRules(cmd *cobra.Command, result *driving.RulesResult, page int) error {
	if len(result.Rules) == 0 {
		cmd.Println("No rules found.")
		return nil
	}

	start, end, err := pageBounds(len(result.Rules), page)
	if err != nil {
		return err
	}

	cmd.Printf("%d rules, %.1f words on average\n\n", result.Stats.Count, result.Stats.AverageWords)
	for i := start; i < end; i++ {
		cmd.Printf("  %d. %s\n", i+1, result.Rules[i])
	}
	pageFooter(cmd, len(result.Rules), page)
	return nil
}

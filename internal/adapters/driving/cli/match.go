package cli

import (
	"github.com/spf13/cobra"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
)

var (
	matchThreshold     float64
	matchAssistedRules bool
	matchJSON          bool
)

var matchCmd = &cobra.Command{
	Use:   "match <rules-file> <pdc-file>",
	Short: "Compare business rules with existing control points",
	Long: `Extract the rules of the first document and the control points of the
second, then score every rule against every control point (TF-IDF cosine
similarity). A rule is covered when its best score reaches the threshold.`,
	Args: cobra.ExactArgs(2),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().Float64VarP(&matchThreshold, "threshold", "t", 0,
		"similarity from which a rule counts as covered (0.1-1.0, default from settings)")
	matchCmd.Flags().BoolVar(&matchAssistedRules, "assisted-rules", false, "extract rules with the text generation service")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	if err := requireWorkbench(); err != nil {
		return err
	}

	ctx := cmd.Context()
	session, _, err := newSessionWithDocument(ctx, args[0])
	if err != nil {
		return err
	}
	rules, err := workbenchService.ExtractRules(ctx, session.ID, driving.ExtractOptions{Assisted: matchAssistedRules})
	if err != nil {
		return err
	}
	printWarnings(cmd, rules.Warnings)

	if _, err := importControlPoints(ctx, session.ID, args[1]); err != nil {
		return err
	}

	result, err := workbenchService.Match(ctx, session.ID, matchThreshold)
	if err != nil {
		return err
	}

	if matchJSON {
		return outputJSON(cmd, result)
	}

	cmd.Printf("%d rules x %d control points, threshold %.2f\n\n",
		result.Matrix.Rows(), result.Matrix.Cols(), result.Threshold)

	cmd.Printf("Covered (%d):\n", len(result.Covered))
	for _, c := range result.Covered {
		cmd.Printf("  %.2f  %s\n        -> %s\n", c.Score, c.Rule, c.ControlPoint)
	}
	cmd.Println()
	cmd.Printf("Not covered (%d):\n", len(result.Uncovered))
	for _, r := range result.Uncovered {
		cmd.Printf("  - %s\n", r)
	}
	return nil
}

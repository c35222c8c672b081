package cli

import (
	"github.com/spf13/cobra"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
)

// controlPointFlags are shared by pdc and testcases.
type controlPointFlags struct {
	importPath    string
	threshold     float64
	assisted      bool
	assistedRules bool
}

func (f *controlPointFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.importPath, "import", "i", "", "document holding existing control points")
	cmd.Flags().Float64VarP(&f.threshold, "threshold", "t", 0,
		"similarity from which a rule counts as covered (0.1-1.0, default from settings)")
	cmd.Flags().BoolVarP(&f.assisted, "assisted", "a", false, "generate with the text generation service")
	cmd.Flags().BoolVar(&f.assistedRules, "assisted-rules", false, "extract rules with the text generation service")
}

var (
	pdcFlags  controlPointFlags
	pdcPage   int
	pdcJSON   bool
	pdcExport bool
	pdcOutput string
)

var pdcCmd = &cobra.Command{
	Use:   "pdc <file>",
	Short: "Build the control points (PDC) of a document",
	Long: `Extract the rules of a document and build its control point list.

With --import, existing control points are read from another document
(PDF, Word or text), kept as is, and a control point is generated only for
the rules none of them covers. Without it, one control point is generated
per rule.`,
	Args: cobra.ExactArgs(1),
	RunE: runPDC,
}

func init() {
	pdcFlags.register(pdcCmd)
	pdcCmd.Flags().IntVarP(&pdcPage, "page", "p", 0, "show one page of 5 control points (0 = all)")
	pdcCmd.Flags().BoolVar(&pdcJSON, "json", false, "output as JSON")
	exportFlags(pdcCmd, &pdcExport, &pdcOutput, driving.ExportControlPoints)
	rootCmd.AddCommand(pdcCmd)
}

// buildControlPoints runs the stages up to control point generation.
func buildControlPoints(cmd *cobra.Command, path string, flags controlPointFlags) (*domain.Session, *driving.ControlPointsResult, error) {
	ctx := cmd.Context()
	session, _, err := newSessionWithDocument(ctx, path)
	if err != nil {
		return nil, nil, err
	}

	rules, err := workbenchService.ExtractRules(ctx, session.ID, driving.ExtractOptions{Assisted: flags.assistedRules})
	if err != nil {
		return nil, nil, err
	}
	printWarnings(cmd, rules.Warnings)

	if flags.importPath != "" {
		imported, err := importControlPoints(ctx, session.ID, flags.importPath)
		if err != nil {
			return nil, nil, err
		}
		cmd.PrintErrf("%d existing control points imported\n", len(imported.ControlPoints))
	}

	result, err := workbenchService.BuildControlPoints(ctx, session.ID, driving.BuildOptions{
		Threshold: flags.threshold,
		Assisted:  flags.assisted,
	})
	if err != nil {
		return nil, nil, err
	}
	printWarnings(cmd, result.Warnings)
	return session, result, nil
}

func runPDC(cmd *cobra.Command, args []string) error {
	if err := requireWorkbench(); err != nil {
		return err
	}

	session, result, err := buildControlPoints(cmd, args[0], pdcFlags)
	if err != nil {
		return err
	}

	if shouldExport(cmd, pdcExport) && len(result.ControlPoints) > 0 {
		if err := exportTo(cmd, session.ID, driving.ExportControlPoints, pdcOutput); err != nil {
			return err
		}
	}

	if pdcJSON {
		return outputJSON(cmd, result)
	}

	if len(result.ControlPoints) == 0 {
		cmd.Println("No control points.")
		return nil
	}
	start, end, err := pageBounds(len(result.ControlPoints), pdcPage)
	if err != nil {
		return err
	}

	cmd.Printf("%d control points (%d existing, %d generated)\n\n", len(result.ControlPoints), result.Imported, result.Generated)
	for i := start; i < end; i++ {
		pdc := result.ControlPoints[i]
		cmd.Printf("  %d. [%s] %s\n", i+1, pdc.Origin, pdc.Text)
	}
	pageFooter(cmd, len(result.ControlPoints), pdcPage)
	return nil
}

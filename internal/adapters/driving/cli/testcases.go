package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
)

var (
	tcFlags     controlPointFlags
	tcAssisted  bool
	tcPage      int
	tcJSON      bool
	tcExport    bool
	tcOutput    string
	tcExportAll bool
)

var testCasesCmd = &cobra.Command{
	Use:     "testcases <file>",
	Aliases: []string{"tc"},
	Short:   "Generate the test cases of a document",
	Long: `Run the whole pipeline on a document: rules, control points (optionally
against an imported list), then one test case per control point.

Test cases built from imported control points are "Manuel"; the others are
"Auto-généré".`,
	Args: cobra.ExactArgs(1),
	RunE: runTestCases,
}

func init() {
	tcFlags.register(testCasesCmd)
	testCasesCmd.Flags().BoolVar(&tcAssisted, "assisted-cases", false, "write test cases with the text generation service")
	testCasesCmd.Flags().IntVarP(&tcPage, "page", "p", 0, "show one page of 5 test cases (0 = all)")
	testCasesCmd.Flags().BoolVar(&tcJSON, "json", false, "output as JSON")
	testCasesCmd.Flags().BoolVar(&tcExportAll, "export-all", false, "also write the rules and control point documents")
	exportFlags(testCasesCmd, &tcExport, &tcOutput, driving.ExportTestCases)
	rootCmd.AddCommand(testCasesCmd)
}

func runTestCases(cmd *cobra.Command, args []string) error {
	if err := requireWorkbench(); err != nil {
		return err
	}

	session, pdcs, err := buildControlPoints(cmd, args[0], tcFlags)
	if err != nil {
		return err
	}
	if len(pdcs.ControlPoints) == 0 {
		cmd.Println("No control points, no test cases.")
		return nil
	}

	result, err := workbenchService.GenerateTestCases(cmd.Context(), session.ID, driving.GenerateOptions{Assisted: tcAssisted})
	if err != nil {
		return err
	}
	printWarnings(cmd, result.Warnings)

	if tcExportAll {
		for _, kind := range []driving.ExportKind{driving.ExportRules, driving.ExportControlPoints} {
			if err := exportTo(cmd, session.ID, kind, ""); err != nil {
				return err
			}
		}
	}
	if shouldExport(cmd, tcExport) || tcExportAll {
		if err := exportTo(cmd, session.ID, driving.ExportTestCases, tcOutput); err != nil {
			return err
		}
	}

	if tcJSON {
		return outputJSON(cmd, result)
	}

	start, end, err := pageBounds(len(result.TestCases), tcPage)
	if err != nil {
		return err
	}
	for i := start; i < end; i++ {
		printTestCase(cmd, result.TestCases[i])
	}
	pageFooter(cmd, len(result.TestCases), tcPage)
	return nil
}

func printTestCase(cmd *cobra.Command, tc domain.TestCase) {
	cmd.Printf("%s [%s]\n", tc.ID, tc.Type)
	cmd.Printf("  PDC: %s\n", tc.PDC)
	cmd.Printf("  Description: %s\n", tc.Description)
	cmd.Println("  Étapes:")
	for _, step := range strings.Split(tc.Steps, "\n") {
		cmd.Printf("    %s\n", step)
	}
	cmd.Printf("  Résultat attendu: %s\n\n", tc.ExpectedResult)
}

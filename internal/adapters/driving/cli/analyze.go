package cli

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/spf13/cobra"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
)

var (
	analyzeTop   int
	analyzeCloud string
	analyzeJSON  bool
	analyzeClean bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Show the most frequent words of a document",
	Long: `Clean the document text (lowercase, stop words and short words removed,
words reduced to their base form) and list the most frequent terms.

Requires the linguistic model (nlp.model = fr).`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeTop, "top", "n", domain.DefaultTopWords,
		fmt.Sprintf("number of terms to list (%d-%d)", domain.MinTopWords, domain.MaxTopWords))
	analyzeCmd.Flags().StringVar(&analyzeCloud, "cloud", "", "write a word cloud PNG to this path")
	analyzeCmd.Flags().BoolVar(&analyzeClean, "clean", false, "print the cleaned text")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

type analyzeOutput struct {
	WordCount   int                    `json:"word_count"`
	Distinct    int                    `json:"distinct_terms"`
	Frequencies []domain.TermFrequency `json:"frequencies"`
	CleanText   string                 `json:"clean_text,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if err := requireWorkbench(); err != nil {
		return err
	}
	if analyzeTop < domain.MinTopWords || analyzeTop > domain.MaxTopWords {
		return fmt.Errorf("%w: --top must be within %d-%d", domain.ErrInvalidInput, domain.MinTopWords, domain.MaxTopWords)
	}

	ctx := cmd.Context()
	session, _, err := newSessionWithDocument(ctx, args[0])
	if err != nil {
		return err
	}

	analysis, err := workbenchService.Analyze(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cmd.Flags().Changed("cloud") {
		if err := exportTo(cmd, session.ID, driving.ExportWordCloud, analyzeCloud); err != nil {
			return err
		}
	}

	top := analysis.Top(analyzeTop)
	if analyzeJSON {
		out := analyzeOutput{
			WordCount:   analysis.WordCount,
			Distinct:    len(analysis.Frequencies),
			Frequencies: top,
		}
		if analyzeClean {
			out.CleanText = analysis.CleanText
		}
		return outputJSON(cmd, out)
	}

	cmd.Printf("Words: %d  Distinct terms: %d\n\n", analysis.WordCount, len(analysis.Frequencies))
	if len(top) == 0 {
		cmd.Println("No terms found.")
		return nil
	}

	cmd.Println(frequencySparkline(top))
	cmd.Println()
	width := 0
	for _, f := range top {
		if n := len([]rune(f.Term)); n > width {
			width = n
		}
	}
	for i, f := range top {
		cmd.Printf("  %2d. %-*s %d\n", i+1, width, f.Term, f.Count)
	}

	if analyzeClean {
		cmd.Println()
		cmd.Println(analysis.CleanText)
	}
	return nil
}

// frequencySparkline charts counts in ranking order, one column per term.
func frequencySparkline(freqs []domain.TermFrequency) string {
	spark := sparkline.New(len(freqs), 4)
	for _, f := range freqs {
		spark.Push(float64(f.Count))
	}
	spark.Draw()
	return spark.View()
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

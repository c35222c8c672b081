package cli

import (
	"unicode/utf8"

	"github.com/spf13/cobra"
)

var (
	extractFull bool
	extractJSON bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract and preview the text of a document",
	Long: `Extract the text of a PDF, Word or text document and print a preview
of its first 1000 characters. PDF extraction requires pdftotext (poppler).`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractFull, "full", false, "print the whole text")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(extractCmd)
}

type extractOutput struct {
	Title      string         `json:"title"`
	Characters int            `json:"characters"`
	Words      int            `json:"words"`
	Text       string         `json:"text"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	if err := requireWorkbench(); err != nil {
		return err
	}

	_, doc, err := newSessionWithDocument(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	text := doc.Preview()
	if extractFull {
		text = doc.Content
	}

	out := extractOutput{
		Title:      doc.Title,
		Characters: utf8.RuneCountInString(doc.Content),
		Words:      wordCount(doc.Content),
		Text:       text,
		Metadata:   doc.Metadata,
	}
	if extractJSON {
		return outputJSON(cmd, out)
	}

	cmd.Printf("Title: %s\n", out.Title)
	cmd.Printf("Characters: %d  Words: %d\n", out.Characters, out.Words)
	cmd.Println()
	cmd.Println(out.Text)
	return nil
}

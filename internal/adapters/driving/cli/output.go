package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/normalisers"
)

// PageSize is the number of items listed per page.
const PageSize = 5

// newSessionWithDocument opens a session and loads the file at path.
func newSessionWithDocument(ctx context.Context, path string) (*domain.Session, *domain.Document, error) {
	session, err := workbenchService.NewSession(ctx)
	if err != nil {
		return nil, nil, err
	}

	raw, err := normalisers.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	doc, err := workbenchService.LoadDocument(ctx, session.ID, raw)
	if err != nil {
		return nil, nil, fmt.Errorf("extract %s: %w", path, err)
	}
	return session, doc, nil
}

// importControlPoints loads an auxiliary control point document.
func importControlPoints(ctx context.Context, sessionID, path string) (*driving.ImportResult, error) {
	raw, err := normalisers.ReadFile(path)
	if err != nil {
		return nil, err
	}
	result, err := workbenchService.ImportControlPoints(ctx, sessionID, raw)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return result, nil
}

// pageBounds returns the [start, end) slice of page (1-based) for n items.
// Page 0 selects every item.
func pageBounds(n, page int) (start, end int, err error) {
	if page == 0 || n == 0 {
		return 0, n, nil
	}
	pages := (n + PageSize - 1) / PageSize
	if page < 0 || page > pages {
		return 0, 0, fmt.Errorf("%w: page %d of %d", domain.ErrInvalidInput, page, pages)
	}
	start = (page - 1) * PageSize
	end = start + PageSize
	if end > n {
		end = n
	}
	return start, end, nil
}

func pageFooter(cmd *cobra.Command, n, page int) {
	if page == 0 {
		return
	}
	pages := (n + PageSize - 1) / PageSize
	cmd.Printf("\nPage %d/%d\n", page, pages)
}

func printWarnings(cmd *cobra.Command, warnings []string) {
	for _, w := range warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// exportTo renders kind and writes it to path, or to the default file
// name when path is empty.
func exportTo(cmd *cobra.Command, sessionID string, kind driving.ExportKind, path string) error {
	out, err := workbenchService.Export(cmd.Context(), sessionID, kind)
	if err != nil {
		return err
	}
	if path == "" {
		path = out.FileName
	}
	if err := os.WriteFile(path, out.Content, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	cmd.PrintErrf("Wrote %s (%d bytes)\n", path, len(out.Content))
	return nil
}

// exportFlags registers --export and --output on cmd.
func exportFlags(cmd *cobra.Command, export *bool, output *string, kind driving.ExportKind) {
	cmd.Flags().BoolVarP(export, "export", "e", false, "write the Word document ("+kind.DefaultFileName()+")")
	cmd.Flags().StringVarP(output, "output", "o", "", "output path for --export")
}

func shouldExport(cmd *cobra.Command, export bool) bool {
	return export || cmd.Flags().Changed("output")
}

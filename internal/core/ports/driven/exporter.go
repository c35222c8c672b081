package driven

import "github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"

// Exporter serialises pipeline outputs into downloadable documents.
type Exporter interface {
	// Extension is the file extension of produced documents, with the dot.
	Extension() string

	// ExportRules renders a numbered list of rules.
	ExportRules(rules []string) ([]byte, error)

	// ExportControlPoints renders a numbered list of control points.
	ExportControlPoints(pdcs []string) ([]byte, error)

	// ExportTestCases renders test cases as a table.
	ExportTestCases(cases []domain.TestCase) ([]byte, error)
}

// WordCloudRenderer draws term frequencies as an image.
type WordCloudRenderer interface {
	// Render returns PNG bytes. Terms are drawn larger the more frequent they are.
	Render(freqs []domain.TermFrequency) ([]byte, error)
}

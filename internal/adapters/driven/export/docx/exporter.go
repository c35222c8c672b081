// Package docx writes pipeline outputs as Word documents.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
)

// Ensure Exporter implements the interface.
var _ driven.Exporter = (*Exporter)(nil)

// Document headings.
const (
	RulesHeading         = "Règles de Gestion Identifiées"
	ControlPointsHeading = "Points de Contrôle (PDC)"
	TestCasesHeading     = "Cas de Test"
)

// TestCaseColumns is the header row of the test-case table.
var TestCaseColumns = []string{"ID", "Type", "PDC", "Description", "Étapes"}

// Exporter produces .docx files.
type Exporter struct {
	now func() time.Time
}

// New creates a DOCX exporter.
func New() *Exporter {
	return &Exporter{now: time.Now}
}

// Extension returns ".docx".
func (e *Exporter) Extension() string {
	return ".docx"
}

// ExportRules renders a heading followed by a numbered list of rules.
func (e *Exporter) ExportRules(rules []string) ([]byte, error) {
	var b body
	b.heading(RulesHeading)
	for _, rule := range rules {
		b.listItem(rule, false)
	}
	return e.pack(RulesHeading, &b)
}

// ExportControlPoints renders a heading followed by a numbered list of
// bold control points.
func (e *Exporter) ExportControlPoints(pdcs []string) ([]byte, error) {
	var b body
	b.heading(ControlPointsHeading)
	for _, pdc := range pdcs {
		b.listItem(pdc, true)
	}
	return e.pack(ControlPointsHeading, &b)
}

// ExportTestCases renders a heading and a five-column grid table.
func (e *Exporter) ExportTestCases(cases []domain.TestCase) ([]byte, error) {
	var b body
	b.heading(TestCasesHeading)

	rows := make([][]string, 0, len(cases))
	for _, tc := range cases {
		rows = append(rows, []string{tc.ID, tc.Type.String(), tc.PDC, tc.Description, tc.Steps})
	}
	b.table(TestCaseColumns, rows)
	return e.pack(TestCasesHeading, &b)
}

// body accumulates the children of w:body.
type body struct {
	strings.Builder
}

func (b *body) heading(text string) {
	b.WriteString(`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr>`)
	b.run(text, false)
	b.WriteString(`</w:p>`)
}

func (b *body) listItem(text string, bold bool) {
	b.WriteString(`<w:p><w:pPr><w:pStyle w:val="ListNumber"/></w:pPr>`)
	b.run(text, bold)
	b.WriteString(`</w:p>`)
}

func (b *body) table(header []string, rows [][]string) {
	b.WriteString(`<w:tbl><w:tblPr><w:tblStyle w:val="TableGrid"/><w:tblW w:w="5000" w:type="pct"/></w:tblPr><w:tblGrid>`)
	for range header {
		b.WriteString(`<w:gridCol/>`)
	}
	b.WriteString(`</w:tblGrid>`)

	b.WriteString(`<w:tr><w:trPr><w:tblHeader/></w:trPr>`)
	for _, h := range header {
		b.cell(h, true)
	}
	b.WriteString(`</w:tr>`)

	for _, row := range rows {
		b.WriteString(`<w:tr>`)
		for _, v := range row {
			b.cell(v, false)
		}
		b.WriteString(`</w:tr>`)
	}
	b.WriteString(`</w:tbl>`)
}

// cell writes one table cell; embedded newlines become paragraphs.
func (b *body) cell(text string, bold bool) {
	b.WriteString(`<w:tc>`)
	for _, line := range strings.Split(text, "\n") {
		b.WriteString(`<w:p>`)
		b.run(line, bold)
		b.WriteString(`</w:p>`)
	}
	b.WriteString(`</w:tc>`)
}

func (b *body) run(text string, bold bool) {
	b.WriteString(`<w:r>`)
	if bold {
		b.WriteString(`<w:rPr><w:b/></w:rPr>`)
	}
	b.WriteString(`<w:t xml:space="preserve">`)
	_ = xml.EscapeText(&b.Builder, []byte(text))
	b.WriteString(`</w:t></w:r>`)
}

func (e *Exporter) pack(title string, b *body) ([]byte, error) {
	now := e.now().UTC()

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		b.String() +
		`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1417" w:right="1417" w:bottom="1417" w:left="1417" w:header="708" w:footer="708" w:gutter="0"/></w:sectPr>` +
		`</w:body></w:document>`

	var escaped bytes.Buffer
	_ = xml.EscapeText(&escaped, []byte(title))
	core := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
<dc:title>%s</dc:title>
<dc:creator>testgen</dc:creator>
<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
</cp:coreProperties>`, escaped.String(), now.Format(time.RFC3339))

	parts := []struct{ name, content string }{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", document},
		{"word/styles.xml", stylesXML},
		{"word/numbering.xml", numberingXML},
		{"docProps/core.xml", core},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: part.name, Method: zip.Deflate, Modified: now})
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

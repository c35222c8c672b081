// Package docx provides a normaliser for Word (.docx) documents.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Normaliser extracts the body text of DOCX files, tables included.
type Normaliser struct{}

// New creates a new DOCX normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{domain.MIMETypeDOCX}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise converts a raw DOCX document to a domain document.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	reader, err := zip.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return nil, fmt.Errorf("%w: open docx archive: %v", domain.ErrInvalidInput, err)
	}

	var body, title string
	for _, file := range reader.File {
		switch file.Name {
		case "word/document.xml":
			body, err = readZipFile(file, extractBody)
			if err != nil {
				return nil, fmt.Errorf("%w: parse document.xml: %v", domain.ErrInvalidInput, err)
			}
		case "docProps/core.xml":
			// Missing or broken core properties only lose the title.
			title, _ = readZipFile(file, extractTitle)
		}
	}

	if title == "" {
		title = normalisers.TitleFromURI(raw.URI)
	}

	metadata := normalisers.CopyMetadata(raw.Metadata)
	metadata["mime_type"] = raw.MIMEType
	metadata["format"] = "docx"

	return &driven.NormaliseResult{
		Document: domain.Document{
			ID:          uuid.New().String(),
			URI:         raw.URI,
			Title:       title,
			Content:     body,
			Metadata:    metadata,
			ExtractedAt: time.Now(),
		},
	}, nil
}

func readZipFile(file *zip.File, parse func(io.Reader) (string, error)) (string, error) {
	rc, err := file.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return parse(rc)
}

// extractBody streams word/document.xml and returns one line per
// paragraph. Tabs and breaks inside a paragraph become whitespace.
func extractBody(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var out, para strings.Builder
	inText := false

	flush := func() {
		line := strings.TrimSpace(para.String())
		para.Reset()
		if line == "" {
			return
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordNS {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				para.WriteByte('\t')
			case "br", "cr":
				para.WriteByte(' ')
			}
		case xml.EndElement:
			if t.Name.Space != wordNS {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				flush()
			}
		case xml.CharData:
			if inText {
				para.Write(t)
			}
		}
	}
	flush()

	return strings.TrimRight(out.String(), "\n"), nil
}

// extractTitle reads dc:title from docProps/core.xml.
func extractTitle(r io.Reader) (string, error) {
	var core struct {
		Title string `xml:"http://purl.org/dc/elements/1.1/ title"`
	}
	if err := xml.NewDecoder(r).Decode(&core); err != nil {
		return "", err
	}
	return strings.TrimSpace(core.Title), nil
}

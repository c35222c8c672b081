// Package plaintext provides the fallback normaliser for text and
// Markdown files.
package plaintext

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

const bom = "\ufeff"

// Normaliser handles plain text documents.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{domain.MIMETypePlainText, domain.MIMETypeMarkdown}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5 // Fallback normaliser
}

// Normalise converts a raw text document to a domain document. Line
// endings are unified to "\n" and a leading byte-order mark is dropped.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content := strings.TrimPrefix(string(raw.Content), bom)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	metadata := normalisers.CopyMetadata(raw.Metadata)
	metadata["mime_type"] = raw.MIMEType
	metadata["format"] = "text"
	if raw.MIMEType == domain.MIMETypeMarkdown {
		metadata["format"] = "markdown"
	}

	return &driven.NormaliseResult{
		Document: domain.Document{
			ID:          uuid.New().String(),
			URI:         raw.URI,
			Title:       title(raw, content),
			Content:     content,
			Metadata:    metadata,
			ExtractedAt: time.Now(),
		},
	}, nil
}

// title prefers an explicit metadata title, then a leading Markdown
// heading, then the file name.
func title(raw *domain.RawDocument, content string) string {
	if t, ok := raw.Metadata["title"].(string); ok && t != "" {
		return t
	}
	if raw.MIMEType == domain.MIMETypeMarkdown {
		first, _, _ := strings.Cut(strings.TrimLeft(content, "\n"), "\n")
		if strings.HasPrefix(first, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(first, "# "))
		}
	}
	return normalisers.TitleFromURI(raw.URI)
}

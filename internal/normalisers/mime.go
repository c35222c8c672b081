package normalisers

import (
	"bytes"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
)

var extensionTypes = map[string]string{
	".pdf":  domain.MIMETypePDF,
	".docx": domain.MIMETypeDOCX,
	".txt":  domain.MIMETypePlainText,
	".text": domain.MIMETypePlainText,
	".md":   domain.MIMETypeMarkdown,
}

// DetectMIMEType returns the MIME type of an uploaded file from its
// extension, falling back to content sniffing. The result carries no
// parameters (no "; charset=").
func DetectMIMEType(name string, content []byte) string {
	if t, ok := extensionTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return t
	}

	if bytes.HasPrefix(content, []byte("%PDF-")) {
		return domain.MIMETypePDF
	}
	if bytes.HasPrefix(content, []byte("PK\x03\x04")) && bytes.Contains(content, []byte("word/document.xml")) {
		return domain.MIMETypeDOCX
	}

	sniffed := http.DetectContentType(content)
	if i := strings.Index(sniffed, ";"); i >= 0 {
		sniffed = sniffed[:i]
	}
	return strings.TrimSpace(sniffed)
}

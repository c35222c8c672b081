package normalisers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
)

// TitleFromURI derives a readable title from a file name:
// "/a/cahier_des-charges.pdf" becomes "cahier des charges".
func TitleFromURI(uri string) string {
	filename := filepath.Base(uri)
	if ext := filepath.Ext(filename); ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}
	filename = strings.ReplaceAll(filename, "_", " ")
	return strings.ReplaceAll(filename, "-", " ")
}

// CopyMetadata creates a shallow copy of metadata, never nil.
func CopyMetadata(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src)+2)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// ReadFile loads a local file as a raw document, detecting its MIME type.
func ReadFile(path string) (*domain.RawDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &domain.RawDocument{
		URI:      path,
		MIMEType: DetectMIMEType(path, content),
		Content:  content,
		Metadata: map[string]any{"filename": filepath.Base(path)},
	}, nil
}

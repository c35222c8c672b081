package domain

// RawDocument represents opaque bytes read from an uploaded file.
// It is the input of text extraction.
type RawDocument struct {
	// URI is the original location (usually a file path).
	URI string

	// MIMEType is the content type (e.g., "application/pdf").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains reader-specific key-value pairs.
	Metadata map[string]any
}

// Supported input MIME types.
const (
	MIMETypePDF       = "application/pdf"
	MIMETypeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMETypePlainText = "text/plain"
	MIMETypeMarkdown  = "text/markdown"
)

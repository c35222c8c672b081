package domain

import (
	"time"
	"unicode/utf8"
)

// PreviewLength is the number of characters shown in a text preview.
const PreviewLength = 1000

// Document is the text extracted from one uploaded file.
// Its Content is never mutated once extracted.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// URI is the original location (file path).
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the full extracted text.
	Content string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// ExtractedAt is when the text was extracted.
	ExtractedAt time.Time
}

// Preview returns the first PreviewLength characters of the content,
// with an ellipsis when the content was truncated.
func (d *Document) Preview() string {
	if utf8.RuneCountInString(d.Content) <= PreviewLength {
		return d.Content
	}
	runes := []rune(d.Content)
	return string(runes[:PreviewLength]) + "..."
}

package driven

import (
	"context"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
)

// Normaliser turns the bytes of one uploaded file format into text.
type Normaliser interface {
	SupportedMIMETypes() []string

	// Priority orders normalisers claiming the same MIME type; the
	// highest wins. Format readers use 50-89, catch-alls 1-9.
	Priority() int

	// Normalise returns the document text. A corrupt file yields an
	// error wrapping domain.ErrInvalidInput.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)
}

// NormaliseResult wraps the extracted document.
type NormaliseResult struct {
	Document domain.Document
}

// NormaliserRegistry dispatches a raw document to the normaliser of its
// MIME type.
type NormaliserRegistry interface {
	// Normalise fails with domain.ErrUnsupportedType when no normaliser
	// claims raw.MIMEType.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)

	Register(normaliser Normaliser)

	// SupportedMIMETypes lists every claimed type, sorted.
	SupportedMIMETypes() []string
}

package driven

import (
	"context"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
)

// LanguageModel annotates text with linguistic information.
// It is optional; when nil, text cleaning, action-verb detection and
// sentence-level rule extraction are disabled.
type LanguageModel interface {
	// Name identifies the model (e.g. "fr").
	Name() string

	// Annotate splits text into tokens carrying POS tag, stop-word flag,
	// punctuation flag and lemma.
	Annotate(ctx context.Context, text string) ([]domain.Token, error)

	// Sentences splits text into sentences, trimmed, in document order.
	Sentences(ctx context.Context, text string) ([]string, error)
}

package services

import (
	"context"
	"strings"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
)

type mockLLM struct {
	response string
	err      error
	calls    int
}

func (m *mockLLM) Generate(_ context.Context, _ string, _ driven.GenerateOptions) (string, error) {
	m.calls++
	return m.response, m.err
}

func (m *mockLLM) ModelName() string            { return "mock" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

// verbModel tags every word ending in "er" as a verb.
type verbModel struct{}

func (verbModel) Name() string { return "verbs" }

func (verbModel) Annotate(_ context.Context, text string) ([]domain.Token, error) {
	var tokens []domain.Token
	for _, w := range strings.Fields(text) {
		tok := domain.Token{Text: w, Lemma: strings.ToLower(w), POS: domain.POSNoun}
		if strings.HasSuffix(w, "er") {
			tok.POS = domain.POSVerb
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (verbModel) Sentences(_ context.Context, text string) ([]string, error) {
	return []string{text}, nil
}

// splitPipeline lowercases and splits on whitespace.
type splitPipeline struct {
	err error
}

func (p *splitPipeline) Process(_ context.Context, text string) ([]string, error) {
	if p.err != nil {
		return nil, p.err
	}
	return strings.Fields(strings.ToLower(text)), nil
}

type fakeRenderer struct {
	got []domain.TermFrequency
}

func (r *fakeRenderer) Render(freqs []domain.TermFrequency) ([]byte, error) {
	r.got = freqs
	return []byte("\x89PNG"), nil
}

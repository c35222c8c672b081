package generation

import (
	"context"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
)

type mockLLM struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	return m.response, m.err
}

func (m *mockLLM) ModelName() string            { return "mock" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

type mockLanguageModel struct {
	tokens []domain.Token
	err    error
}

func (m *mockLanguageModel) Name() string { return "mock" }

func (m *mockLanguageModel) Annotate(_ context.Context, _ string) ([]domain.Token, error) {
	return m.tokens, m.err
}

func (m *mockLanguageModel) Sentences(_ context.Context, text string) ([]string, error) {
	return []string{text}, nil
}

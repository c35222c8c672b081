package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/extraction"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/generation"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/logger"
)

var _ driven.PromptStore = (*PromptStore)(nil)

// builtinPrompt is a default template and the number of %s verbs its
// callers fill in.
type builtinPrompt struct {
	text string
	args int
}

var builtinPrompts = map[string]builtinPrompt{
	driven.PromptRuleExtraction: {extraction.DefaultRulePrompt, 1},
	driven.PromptControlPoint:   {generation.DefaultControlPointPrompt, 1},
	driven.PromptTestCase:       {generation.DefaultTestCasePrompt, 3},
}

// PromptStore serves the prompt templates from <dir>/<name>.txt. The
// directory is seeded with the built-in prompts on the first Load. An
// unreadable file, or one whose %s count differs from the built-in
// prompt's, falls back to the built-in prompt.
type PromptStore struct {
	dir string

	seedOnce sync.Once
	seedErr  error

	mu    sync.RWMutex
	cache map[string]string
}

// NewPromptStore does no I/O. An empty promptDir means ~/.testgen/prompts.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(dir, "prompts")
	}
	return &PromptStore{dir: promptDir, cache: make(map[string]string)}, nil
}

// Load returns the template called name. Unknown names are an error.
func (s *PromptStore) Load(name string) (string, error) {
	builtin, known := builtinPrompts[name]
	if !known {
		return "", fmt.Errorf("unknown prompt %q", name)
	}

	s.seedOnce.Do(s.seed)
	if s.seedErr != nil {
		return builtin.text, nil
	}

	s.mu.RLock()
	cached, ok := s.cache[name]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	prompt := builtin.text
	data, err := os.ReadFile(s.path(name))
	switch {
	case err != nil:
		logger.Debug("prompt %s: %v, using built-in", name, err)
	case strings.Count(string(data), "%s") != builtin.args:
		logger.Warn("prompt %s: expected %d %%s placeholder(s), using built-in", name, builtin.args)
	default:
		prompt = strings.TrimSpace(string(data))
	}

	s.mu.Lock()
	if existing, ok := s.cache[name]; ok {
		prompt = existing
	} else {
		s.cache[name] = prompt
	}
	s.mu.Unlock()
	return prompt, nil
}

// Reload forgets cached templates so edits are picked up.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory.
func (s *PromptStore) Dir() string {
	return s.dir
}

func (s *PromptStore) path(name string) string {
	return filepath.Join(s.dir, name+".txt")
}

// seed writes the built-in prompts and the README, never overwriting a
// file the user already has.
func (s *PromptStore) seed() {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		s.seedErr = fmt.Errorf("create prompt directory: %w", err)
		logger.Warn("%v", s.seedErr)
		return
	}

	files := map[string]string{"README.md": promptReadme}
	for name, p := range builtinPrompts {
		files[name+".txt"] = p.text
	}
	for file, content := range files {
		path := filepath.Join(s.dir, file)
		if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			s.seedErr = fmt.Errorf("write %s: %w", file, err)
			logger.Warn("%v", s.seedErr)
			return
		}
	}
}

const promptReadme = `# Prompts testgen

Ce dossier contient les prompts envoyés au service de génération de texte.

- rule_extraction.txt : extraction des règles de gestion (un %s : le texte)
- control_point.txt : règle vers point de contrôle (un %s : la règle)
- test_case.txt : cas de test structuré (trois %s : PDC, identifiant, type)

Modifiez un fichier pour adapter le comportement du modèle. Les changements
sont pris en compte à la commande suivante ou après redémarrage de la TUI.
Un prompt dont le nombre de %s ne correspond pas est ignoré au profit du
prompt intégré.

Le prompt test_case.txt doit conserver les libellés "Description:",
"Étapes:" et "Résultat attendu:" sur lesquels repose l'analyse de la réponse.
`

// Package env overlays environment variables, optionally read from a
// .env file, on top of another ConfigStore.
package env

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ConfigStore = (*Store)(nil)

// Bindings maps environment variables to configuration keys.
var Bindings = map[string]string{
	"AZURE_OPENAI_KEY":      "llm.api_key",
	"AZURE_OPENAI_ENDPOINT": "llm.base_url",
	"DEPLOYMENT_NAME":       "llm.model",
	"API_VERSION":           "llm.api_version",
}

// Store reads through to the wrapped store after consulting the overlay.
// Writes go to the wrapped store only, so secrets from the environment
// never land in the config file.
type Store struct {
	inner   driven.ConfigStore
	overlay map[string]any
}

// New builds the overlay from the process environment and, when present,
// the given .env files (first file wins for duplicate names). Process
// environment wins over .env content.
func New(inner driven.ConfigStore, dotenvFiles ...string) (*Store, error) {
	values := make(map[string]string)
	for _, path := range dotenvFiles {
		parsed, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		for k, v := range parsed {
			if _, seen := values[k]; !seen {
				values[k] = v
			}
		}
	}
	for name := range Bindings {
		if v, ok := os.LookupEnv(name); ok {
			values[name] = v
		}
	}

	overlay := make(map[string]any)
	for name, key := range Bindings {
		if v := values[name]; v != "" {
			overlay[key] = v
		}
	}
	if _, ok := overlay["llm.api_key"]; ok {
		overlay["llm.provider"] = string(domain.AIProviderAzure)
	}

	return &Store{inner: inner, overlay: overlay}, nil
}

// Overridden reports whether key comes from the environment.
func (s *Store) Overridden(key string) bool {
	_, ok := s.overlay[key]
	return ok
}

// Get retrieves a configuration value by key.
func (s *Store) Get(key string) (any, bool) {
	if v, ok := s.overlay[key]; ok {
		return v, true
	}
	return s.inner.Get(key)
}

// GetString retrieves a string configuration value.
func (s *Store) GetString(key string) string {
	if v, ok := s.overlay[key].(string); ok {
		return v
	}
	return s.inner.GetString(key)
}

// GetInt retrieves an integer configuration value.
func (s *Store) GetInt(key string) int {
	if v, ok := s.overlay[key].(string); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return s.inner.GetInt(key)
}

// GetFloat retrieves a floating-point configuration value.
func (s *Store) GetFloat(key string) float64 {
	if v, ok := s.overlay[key].(string); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return s.inner.GetFloat(key)
}

// GetBool retrieves a boolean configuration value.
func (s *Store) GetBool(key string) bool {
	if v, ok := s.overlay[key].(string); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return s.inner.GetBool(key)
}

// Set stores a value in the wrapped store.
func (s *Store) Set(key string, value any) error {
	return s.inner.Set(key, value)
}

// Save persists the wrapped store.
func (s *Store) Save() error {
	return s.inner.Save()
}

// Load reloads the wrapped store. The overlay is fixed at construction.
func (s *Store) Load() error {
	return s.inner.Load()
}

// Path returns the wrapped store's path.
func (s *Store) Path() string {
	return s.inner.Path()
}

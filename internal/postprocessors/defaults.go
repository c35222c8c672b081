package postprocessors

import (
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/postprocessors/lemmatise"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/postprocessors/normalise"
)

// RegisterDefaults registers all built-in processors with the registry.
// The lemmatiser annotates through lm; with a nil lm it reports
// domain.ErrLanguageModelUnavailable when run.
func RegisterDefaults(r *Registry, lm driven.LanguageModel) {
	r.Register(normalise.Name, buildNormalise)
	r.Register(lemmatise.Name, func(cfg map[string]any) (driven.PostProcessor, error) {
		return buildLemmatise(cfg, lm)
	})
}

func buildNormalise(_ map[string]any) (driven.PostProcessor, error) {
	return normalise.New(), nil
}

// buildLemmatise creates a lemmatiser from generic config.
// Supported config keys:
//   - min_length (int): Shortest kept lemma in characters (default: 3)
func buildLemmatise(cfg map[string]any, lm driven.LanguageModel) (driven.PostProcessor, error) {
	if lm == nil {
		return nil, domain.ErrLanguageModelUnavailable
	}
	var opts []lemmatise.Option
	if cfg != nil {
		if n := getIntFromConfig(cfg, "min_length"); n > 0 {
			opts = append(opts, lemmatise.WithMinLength(n))
		}
	}
	return lemmatise.New(lm, opts...), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

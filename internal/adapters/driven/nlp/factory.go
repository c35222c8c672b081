// Package nlp selects the configured linguistic model.
package nlp

import (
	"fmt"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driven/nlp/french"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
)

// Create returns the linguistic model named in settings. A disabled model
// returns (nil, nil); callers treat nil as "unavailable".
func Create(settings domain.NLPSettings) (driven.LanguageModel, error) {
	if !settings.Enabled() {
		return nil, nil
	}
	switch settings.Model {
	case french.Name:
		return french.New(), nil
	default:
		return nil, fmt.Errorf("%w: language model %q", domain.ErrUnsupportedType, settings.Model)
	}
}

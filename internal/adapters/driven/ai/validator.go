package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
)

var _ driven.AIConfigValidator = (*ConfigValidator)(nil)

// ConfigValidator pings the provider named in LLM settings.
type ConfigValidator struct {
	timeout time.Duration
}

// NewConfigValidator returns a validator waiting at most pingTimeout.
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{timeout: pingTimeout}
}

// ValidateLLM accepts unconfigured settings. Failures name the provider
// and model so the settings wizard can show them as is.
func (v *ConfigValidator) ValidateLLM(config *domain.LLMSettings) error {
	if config == nil || !config.IsConfigured() {
		return nil
	}

	svc, err := CreateLLMService(config)
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
	defer cancel()
	if err := svc.Ping(ctx); err != nil {
		return fmt.Errorf("%s (%s): %w", config.Provider, svc.ModelName(), err)
	}
	return nil
}

// Package limited wraps an LLM service with a request-rate limit and
// default generation options.
package limited

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/logger"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

// DefaultBackoff is applied after a throttling response.
const DefaultBackoff = 10 * time.Second

// Config holds the limiter configuration.
type Config struct {
	// RequestsPerSecond is the sustained rate; zero or negative disables
	// limiting.
	RequestsPerSecond float64

	// Burst is the bucket size (minimum 1).
	Burst int

	// Defaults fill zero-valued GenerateOptions fields.
	Defaults driven.GenerateOptions
}

// LLMService decorates another LLMService.
type LLMService struct {
	inner    driven.LLMService
	limiter  *rate.Limiter
	defaults driven.GenerateOptions

	mu      sync.Mutex
	retryAt time.Time
}

// Wrap decorates inner. A nil inner yields nil so the "unavailable"
// signal is preserved.
func Wrap(inner driven.LLMService, cfg Config) driven.LLMService {
	if inner == nil {
		return nil
	}
	s := &LLMService{inner: inner, defaults: cfg.Defaults}
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	return s
}

// Generate waits for a slot, then delegates.
func (s *LLMService) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	if err := s.wait(ctx); err != nil {
		return "", err
	}

	if opts.MaxTokens == 0 {
		opts.MaxTokens = s.defaults.MaxTokens
	}
	if opts.Temperature == 0 {
		opts.Temperature = s.defaults.Temperature
	}
	if len(opts.StopWords) == 0 {
		opts.StopWords = s.defaults.StopWords
	}

	out, err := s.inner.Generate(ctx, prompt, opts)
	if err != nil && isThrottled(err) {
		logger.Warn("%s throttled, backing off %s", s.inner.ModelName(), DefaultBackoff)
		s.mu.Lock()
		s.retryAt = time.Now().Add(DefaultBackoff)
		s.mu.Unlock()
	}
	return out, err
}

func (s *LLMService) wait(ctx context.Context) error {
	s.mu.Lock()
	retryAt := s.retryAt
	s.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	if s.limiter == nil {
		return nil
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}
	return nil
}

func isThrottled(err error) bool {
	return strings.Contains(err.Error(), "status 429")
}

// ModelName returns the wrapped model name.
func (s *LLMService) ModelName() string {
	return s.inner.ModelName()
}

// Ping bypasses the limiter.
func (s *LLMService) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

// Close closes the wrapped service.
func (s *LLMService) Close() error {
	return s.inner.Close()
}

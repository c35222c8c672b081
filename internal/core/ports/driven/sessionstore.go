package driven

import (
	"context"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
)

// SessionStore holds analyst sessions for the lifetime of the process.
type SessionStore interface {
	// Save stores or replaces a session.
	Save(ctx context.Context, session *domain.Session) error

	// Get retrieves a session by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Delete removes a session.
	Delete(ctx context.Context, id string) error

	// List returns all sessions, most recently updated first.
	List(ctx context.Context) ([]*domain.Session, error)
}

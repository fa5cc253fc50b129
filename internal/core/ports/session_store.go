package ports

import (
	"context"

	"github.com/comanda/ordering-system/internal/core/domain"
)

// SessionStore holds server-side login state, keyed by session ID.
// Get returns domain.ErrSessionNotFound for unknown or expired sessions.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

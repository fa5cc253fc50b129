package ports

import (
	"context"
	"time"

	"github.com/comanda/ordering-system/internal/core/domain"
)

// LoginResult is returned by a successful login. Token is the signed value
// the transport layer places in the session cookie.
type LoginResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// AuthService defines login and logout use-cases.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
}

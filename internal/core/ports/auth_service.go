package ports

import (
	"context"

	"github.com/userportal/account-system/internal/core/domain"
)

// AuthService authenticates accounts and manages login sessions.
type AuthService interface {
	// Login verifies the credentials and returns a signed token plus the
	// authenticated account's summary.
	Login(ctx context.Context, username, password string) (string, *domain.Summary, error)

	// Logout revokes the session identified by the token's jti claim.
	Logout(ctx context.Context, sessionID string) error
}

// SessionRegistry tracks active login sessions. Tokens whose session has
// been revoked or expired are rejected by the auth middleware even if the
// signature is still valid.
type SessionRegistry interface {
	Create(ctx context.Context, sessionID string) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Revoke(ctx context.Context, sessionID string) error
}

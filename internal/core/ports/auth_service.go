package ports

import (
	"context"

	"github.com/shoplane/storefront-system/internal/core/domain"
)

// Claims is the verified content of a session token.
type Claims struct {
	UserID string
	Role   domain.Role
}

// AuthService defines account and session use cases.
type AuthService interface {
	Signup(ctx context.Context, name, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

// TokenVerifier validates a session token. A nil result means
// unauthenticated, whatever the underlying cause (malformed, bad
// signature, expired).
type TokenVerifier interface {
	VerifyToken(token string) *Claims
}

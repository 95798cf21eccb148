package ports

import (
	"context"

	"github.com/shoplane/storefront-system/internal/core/domain"
)

// CartStore persists one cart per user. Load returns an empty cart, not an
// error, when the user has none yet.
type CartStore interface {
	Load(ctx context.Context, userID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, userID string) error
}

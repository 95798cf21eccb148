package ports

import (
	"context"

	"github.com/shoplane/storefront-system/internal/core/domain"
)

// CartService defines the order-in-progress use cases. All operations are
// scoped to the authenticated user's cart.
type CartService interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	// AddItem snapshots the product's current name/price into the cart,
	// merging on product key (quantity+1 when already present).
	AddItem(ctx context.Context, userID, productID string) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (*domain.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}

package ports

import (
	"context"

	"github.com/shoplane/storefront-system/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog entries.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns all products, newest first.
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	// DecrementStock subtracts quantity from the product's stock only when
	// enough stock remains; otherwise domain.ErrInsufficientStock.
	DecrementStock(ctx context.Context, id string, quantity int) error
}

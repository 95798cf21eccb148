package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shoplane/storefront-system/internal/core/domain"
)

// ProductInput carries all writable fields of a catalog entry.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	Stock       int
	Category    string
}

// ProductService defines catalog use cases. Listing and retrieval are
// public; mutations are admin-gated at the transport layer.
type ProductService interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

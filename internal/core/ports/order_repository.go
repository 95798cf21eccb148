package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shoplane/storefront-system/internal/core/domain"
)

// MonthlyStat is one month's rollup from the orders collection.
type MonthlyStat struct {
	Month   string          // "2026-01"
	Orders  int64
	Revenue decimal.Decimal
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// ListByUser returns one customer's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	// ListAll returns every order, newest first.
	ListAll(ctx context.Context) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	// Stats aggregates order counts and revenue grouped by calendar month.
	Stats(ctx context.Context) ([]MonthlyStat, error)
}

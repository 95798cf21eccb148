package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shoplane/storefront-system/internal/core/domain"
)

// OrderLineInput is one requested line at checkout. Only the product key and
// quantity are trusted from the client; name and price are re-read from the
// catalog at placement time.
type OrderLineInput struct {
	ProductID string
	Quantity  int
}

// PlaceOrderInput carries everything needed to create an order.
type PlaceOrderInput struct {
	UserID        string
	Items         []OrderLineInput
	Address       domain.ShippingAddress
	PaymentMethod string
}

// StatsResult is the admin financial rollup.
type StatsResult struct {
	TotalRevenue decimal.Decimal
	TotalProfit  decimal.Decimal
	TotalOrders  int64
	Monthly      []MonthlyStat
}

// OrderService defines checkout and back-office use cases.
type OrderService interface {
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, userID string) ([]*domain.Order, error)
	ListAllOrders(ctx context.Context) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	Stats(ctx context.Context) (*StatsResult, error)
}

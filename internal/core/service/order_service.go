package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/shoplane/storefront-system/internal/core/domain"
	"github.com/shoplane/storefront-system/internal/core/ports"
)

// profitMargin is the flat estimate used by the financial rollup.
var profitMargin = decimal.NewFromFloat(0.25)

// OrderService implements checkout and the admin order views.
type OrderService struct {
	orders   ports.OrderRepository
	products ports.ProductRepository
	users    ports.UserRepository
	cart     ports.CartStore
	log      zerolog.Logger
}

func NewOrderService(
	orders ports.OrderRepository,
	products ports.ProductRepository,
	users ports.UserRepository,
	cart ports.CartStore,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{orders: orders, products: products, users: users, cart: cart, log: log}
}

// PlaceOrder creates an order snapshot and decrements stock per line.
//
// The client's cached cart prices are never trusted: every line is repriced
// from the catalog here. The order insert and the per-line stock decrements
// are separate writes — a decrement that fails after the insert is logged
// and skipped, not rolled back. The decrement itself is conditional on
// remaining stock, so recorded stock never goes negative.
func (s *OrderService) PlaceOrder(ctx context.Context, in ports.PlaceOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: empty order", domain.ErrInvalidOrder)
	}
	for _, line := range in.Items {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity below 1 for product %s", domain.ErrInvalidOrder, line.ProductID)
		}
	}

	user, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(in.Items))
	total := decimal.Zero
	for _, line := range in.Items {
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
			Image:     product.Image,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	now := time.Now().UTC()
	order := &domain.Order{
		Number:        generateOrderNumber(),
		UserID:        user.ID,
		CustomerName:  user.Name,
		CustomerEmail: user.Email,
		Items:         items,
		TotalAmount:   total,
		Address:       in.Address,
		PaymentMethod: in.PaymentMethod,
		Status:        domain.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	for _, item := range created.Items {
		if err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			// Order already persisted; record the mismatch instead of failing the checkout.
			s.log.Warn().Err(err).
				Str("order_number", created.Number).
				Str("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Msg("stock decrement failed after order insert")
		}
	}

	if err := s.cart.Delete(ctx, user.ID); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("cart clear failed after order placement")
	}

	s.log.Info().
		Str("order_number", created.Number).
		Str("user_id", user.ID).
		Int("lines", len(created.Items)).
		Str("total", created.TotalAmount.String()).
		Msg("order placed")

	return created, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) ListAllOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.ListAll(ctx)
}

// UpdateStatus moves an order to a strictly later fulfilment stage.
// Backward moves and same-stage writes are rejected.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	if !order.Status.CanAdvanceTo(status) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, status)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}

	s.log.Info().
		Str("order_id", orderID).
		Str("from", string(order.Status)).
		Str("to", string(status)).
		Msg("order status advanced")
	return nil
}

// Stats returns the financial rollup: totals plus a per-month breakdown
// aggregated by the repository. Profit is a flat-margin estimate.
func (s *OrderService) Stats(ctx context.Context) (*ports.StatsResult, error) {
	monthly, err := s.orders.Stats(ctx)
	if err != nil {
		return nil, err
	}

	result := &ports.StatsResult{Monthly: monthly, TotalRevenue: decimal.Zero}
	for _, m := range monthly {
		result.TotalRevenue = result.TotalRevenue.Add(m.Revenue)
		result.TotalOrders += m.Orders
	}
	result.TotalProfit = result.TotalRevenue.Mul(profitMargin)
	return result, nil
}

// generateOrderNumber returns a customer-facing reference like ORD-8F2K....
func generateOrderNumber() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

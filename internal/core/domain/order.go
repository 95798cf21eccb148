package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfilment state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
)

// statusRank orders the fulfilment states. Transitions must strictly
// increase the rank; skipping a stage forward is allowed, moving back is not.
var statusRank = map[OrderStatus]int{
	StatusPending:   0,
	StatusConfirmed: 1,
	StatusShipped:   2,
	StatusDelivered: 3,
}

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidOrder = errors.New("invalid order")
var ErrInvalidStatus = errors.New("invalid order status")
var ErrInvalidTransition = errors.New("invalid status transition")

// ParseOrderStatus validates a free-form string against the status set.
func ParseOrderStatus(s string) (OrderStatus, error) {
	if _, ok := statusRank[OrderStatus(s)]; !ok {
		return "", ErrInvalidStatus
	}
	return OrderStatus(s), nil
}

// CanAdvanceTo reports whether a transition from s to next moves forward.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	cur, ok := statusRank[s]
	if !ok {
		return false
	}
	nxt, ok := statusRank[next]
	if !ok {
		return false
	}
	return nxt > cur
}

// OrderItem is an immutable snapshot of a product line at purchase time.
// Later edits to the live product never change it.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

// ShippingAddress is the destination recorded on an order.
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Phone   string `json:"phone"`
}

// Order is the aggregate created at checkout. It owns copies of item
// name/price/quantity, decoupled from live product records.
type Order struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	UserID        string          `json:"user_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Items         []OrderItem     `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Address       ShippingAddress `json:"shipping_address"`
	PaymentMethod string          `json:"payment_method"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

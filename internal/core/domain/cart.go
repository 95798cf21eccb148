package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one product line in a cart. ProductID is the unique key
// within a cart: adding the same product twice never produces two lines.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
}

// Cart is the order-in-progress for one user. It is a convenience cache:
// the order placement path reprices every line from the catalog, so prices
// held here are display values only.
type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []LineItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart returns an empty cart for the given user.
func NewCart(userID string) *Cart {
	return &Cart{UserID: userID}
}

// AddItem merges an item into the cart. If a line with the same ProductID
// already exists its quantity is incremented by 1 and line order is
// preserved; otherwise the item is appended as a new line with quantity 1.
func (c *Cart) AddItem(item LineItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
}

// RemoveItem deletes the line with the given product key. No-op when absent.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity to max(1, quantity). The floor is
// enforced here: decrementing never auto-removes a line. No-op when the
// product key is absent.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart. Called after an order is successfully placed.
func (c *Cart) Clear() {
	c.Items = nil
}

// Subtotal is derived on demand, never stored: sum(unit_price * quantity).
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// TotalUnits is the number of physical units across all lines.
func (c *Cart) TotalUnits() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

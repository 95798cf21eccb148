package handler

import (
	"time"

	"github.com/shopspring/decimal"
)

type orderLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

type shippingAddressRequest struct {
	Street  string `json:"street"   validate:"required"`
	City    string `json:"city"     validate:"required"`
	State   string `json:"state"    validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
	Phone   string `json:"phone"    validate:"required"`
}

type placeOrderRequest struct {
	Items           []orderLineRequest     `json:"items"            validate:"required,min=1,dive"`
	ShippingAddress shippingAddressRequest `json:"shipping_address" validate:"required"`
	PaymentMethod   string                 `json:"payment_method"   validate:"required,oneof=cod card"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed shipped delivered"`
}

// Response-only types owned by the transport layer, intentionally separate
// from the domain types so the JSON contract is not coupled to internal
// changes.

type orderItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

type shippingAddressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Phone   string `json:"phone"`
}

type orderResponse struct {
	ID              string                  `json:"id"`
	Number          string                  `json:"number"`
	CustomerName    string                  `json:"customer_name"`
	CustomerEmail   string                  `json:"customer_email"`
	Items           []orderItemResponse     `json:"items"`
	TotalAmount     decimal.Decimal         `json:"total_amount"`
	ShippingAddress shippingAddressResponse `json:"shipping_address"`
	PaymentMethod   string                  `json:"payment_method"`
	Status          string                  `json:"status"`
	CreatedAt       time.Time               `json:"created_at"`
}

type listOrdersResponse struct {
	Orders []orderResponse `json:"orders"`
}

type monthlyStatResponse struct {
	Month   string          `json:"month"`
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

type statsResponse struct {
	TotalRevenue decimal.Decimal       `json:"total_revenue"`
	TotalProfit  decimal.Decimal       `json:"total_profit"`
	TotalOrders  int64                 `json:"total_orders"`
	MonthlyStats []monthlyStatResponse `json:"monthly_stats"`
}

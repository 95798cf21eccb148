package handler

import (
	"github.com/shopspring/decimal"

	"github.com/shoplane/storefront-system/internal/core/domain"
	"github.com/shoplane/storefront-system/internal/core/ports"
)

// profitMargin mirrors the flat estimate used by the stats service for the
// per-month profit column.
var profitMargin = decimal.NewFromFloat(0.25)

func toPlaceOrderInput(req placeOrderRequest, userID string) ports.PlaceOrderInput {
	items := make([]ports.OrderLineInput, len(req.Items))
	for i, line := range req.Items {
		items[i] = ports.OrderLineInput{ProductID: line.ProductID, Quantity: line.Quantity}
	}
	return ports.PlaceOrderInput{
		UserID: userID,
		Items:  items,
		Address: domain.ShippingAddress{
			Street:  req.ShippingAddress.Street,
			City:    req.ShippingAddress.City,
			State:   req.ShippingAddress.State,
			ZipCode: req.ShippingAddress.ZipCode,
			Phone:   req.ShippingAddress.Phone,
		},
		PaymentMethod: req.PaymentMethod,
	}
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}
	return orderResponse{
		ID:            o.ID,
		Number:        o.Number,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Items:         items,
		TotalAmount:   o.TotalAmount,
		ShippingAddress: shippingAddressResponse{
			Street:  o.Address.Street,
			City:    o.Address.City,
			State:   o.Address.State,
			ZipCode: o.Address.ZipCode,
			Phone:   o.Address.Phone,
		},
		PaymentMethod: o.PaymentMethod,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt.UTC(),
	}
}

func toListOrdersResponse(orders []*domain.Order) listOrdersResponse {
	items := make([]orderResponse, len(orders))
	for i, o := range orders {
		items[i] = toOrderResponse(o)
	}
	return listOrdersResponse{Orders: items}
}

func toStatsResponse(r *ports.StatsResult) statsResponse {
	monthly := make([]monthlyStatResponse, len(r.Monthly))
	for i, m := range r.Monthly {
		monthly[i] = monthlyStatResponse{
			Month:   m.Month,
			Orders:  m.Orders,
			Revenue: m.Revenue,
			Profit:  m.Revenue.Mul(profitMargin),
		}
	}
	return statsResponse{
		TotalRevenue: r.TotalRevenue,
		TotalProfit:  r.TotalProfit,
		TotalOrders:  r.TotalOrders,
		MonthlyStats: monthly,
	}
}

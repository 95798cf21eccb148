package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplane/storefront-system/internal/api/metrics"
	"github.com/shoplane/storefront-system/internal/core/domain"
	"github.com/shoplane/storefront-system/internal/core/ports"
)

// OrderHandler handles checkout for customers and the order back-office for
// admins. Role gating happens in the router; handlers only read the claim.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Place handles POST /v1/orders (customer).
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      placeOrderRequest  true  "Order lines and shipping address"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	order, err := h.service.PlaceOrder(c.Request().Context(), toPlaceOrderInput(req, userID))
	if err != nil {
		return err
	}

	metrics.OrdersPlacedTotal.Inc()
	metrics.OrderValue.Observe(order.TotalAmount.InexactFloat64())

	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

// List handles GET /v1/orders (customer) — the session user's own orders.
//
// @Summary      List the current user's orders
// @Tags         orders
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  listOrdersResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListOrdersResponse(orders))
}

// ListAll handles GET /v1/admin/orders (admin).
//
// @Summary      List all orders
// @Tags         admin
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  listOrdersResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/orders [get]
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.service.ListAllOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListOrdersResponse(orders))
}

// UpdateStatus handles PATCH /v1/admin/orders/:id/status (admin). Transitions
// only move forward through the fulfilment stages.
//
// @Summary      Advance an order's status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string                    true  "Order id"
// @Param        body  body      updateOrderStatusRequest  true  "Target status"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		return err
	}

	if err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), status); err != nil {
		return err
	}

	metrics.OrderStatusUpdatesTotal.WithLabelValues(string(status)).Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "status updated"})
}

// Stats handles GET /v1/admin/stats (admin).
//
// @Summary      Financial rollup
// @Tags         admin
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  statsResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/stats [get]
func (h *OrderHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStatsResponse(stats))
}

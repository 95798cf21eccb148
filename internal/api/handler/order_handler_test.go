package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/shoplane/storefront-system/internal/api/middleware"
	"github.com/shoplane/storefront-system/internal/core/domain"
	"github.com/shoplane/storefront-system/internal/core/ports"
)

type stubOrderService struct {
	placed    *ports.PlaceOrderInput
	order     *domain.Order
	orders    []*domain.Order
	updateErr error
	updatedID string
	updatedTo domain.OrderStatus
	stats     *ports.StatsResult
}

func (s *stubOrderService) PlaceOrder(_ context.Context, in ports.PlaceOrderInput) (*domain.Order, error) {
	s.placed = &in
	if s.order == nil {
		return nil, domain.ErrProductNotFound
	}
	return s.order, nil
}

func (s *stubOrderService) ListOrders(_ context.Context, userID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubOrderService) ListAllOrders(_ context.Context) ([]*domain.Order, error) {
	return s.orders, nil
}

func (s *stubOrderService) UpdateStatus(_ context.Context, orderID string, status domain.OrderStatus) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updatedID = orderID
	s.updatedTo = status
	return nil
}

func (s *stubOrderService) Stats(_ context.Context) (*ports.StatsResult, error) {
	return s.stats, nil
}

// stubVerifier maps token values straight to claims.
type stubVerifier struct {
	sessions map[string]ports.Claims
}

func (v *stubVerifier) VerifyToken(token string) *ports.Claims {
	claims, ok := v.sessions[token]
	if !ok {
		return nil
	}
	return &claims
}

func sampleOrder() *domain.Order {
	return &domain.Order{
		ID:            "o1",
		Number:        "ORD-4F9A2C1B07E3",
		UserID:        "u1",
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Walnut Desk", UnitPrice: decimal.RequireFromString("249.99"), Quantity: 1},
		},
		TotalAmount:   decimal.RequireFromString("249.99"),
		Address:       domain.ShippingAddress{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Phone: "555-0100"},
		PaymentMethod: "card",
		Status:        domain.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}
}

// newOrderApp wires the handler behind the same middleware chain the router
// uses, so route-level behavior can be exercised with ServeHTTP.
func newOrderApp(svc ports.OrderService) *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()

	verifier := &stubVerifier{sessions: map[string]ports.Claims{
		"customer-token": {UserID: "u1", Role: domain.RoleCustomer},
		"admin-token":    {UserID: "a1", Role: domain.RoleAdmin},
	}}

	h := NewOrderHandler(svc)
	requireAuth := middleware.Auth(verifier)

	orders := e.Group("/v1/orders", requireAuth, middleware.RequireRole(domain.RoleCustomer))
	orders.POST("", h.Place)
	orders.GET("", h.List)

	admin := e.Group("/v1/admin", requireAuth, middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/orders", h.ListAll)
	admin.PATCH("/orders/:id/status", h.UpdateStatus)
	admin.GET("/stats", h.Stats)

	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestOrderHandler_Place(t *testing.T) {
	svc := &stubOrderService{order: sampleOrder()}
	e := newOrderApp(svc)

	body := `{
		"items": [{"product_id": "p1", "quantity": 1}],
		"shipping_address": {"street": "1 Main St", "city": "Springfield", "state": "IL", "zip_code": "62701", "phone": "555-0100"},
		"payment_method": "card"
	}`
	rec := doJSON(e, http.MethodPost, "/v1/orders", body, "customer-token")

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.placed == nil {
		t.Fatalf("service not called")
	}
	// The user id comes from the session claim, never from the payload.
	if svc.placed.UserID != "u1" {
		t.Fatalf("expected claim user id, got %q", svc.placed.UserID)
	}
	if !strings.Contains(rec.Body.String(), "ORD-4F9A2C1B07E3") {
		t.Fatalf("response missing order number: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"pending"`) {
		t.Fatalf("new order should surface as pending: %s", rec.Body.String())
	}
}

func TestOrderHandler_Place_EmptyItems(t *testing.T) {
	svc := &stubOrderService{order: sampleOrder()}
	e := newOrderApp(svc)

	body := `{
		"items": [],
		"shipping_address": {"street": "1 Main St", "city": "Springfield", "state": "IL", "zip_code": "62701", "phone": "555-0100"},
		"payment_method": "card"
	}`
	rec := doJSON(e, http.MethodPost, "/v1/orders", body, "customer-token")

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if svc.placed != nil {
		t.Fatalf("service must not be called on invalid payload")
	}
}

func TestOrderHandler_AdminRoutes_RequireSession(t *testing.T) {
	svc := &stubOrderService{orders: []*domain.Order{sampleOrder()}}
	e := newOrderApp(svc)

	rec := doJSON(e, http.MethodGet, "/v1/admin/orders", "", "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "ORD-") {
		t.Fatalf("unauthenticated response leaked order data: %s", rec.Body.String())
	}
}

func TestOrderHandler_AdminRoutes_RejectCustomer(t *testing.T) {
	svc := &stubOrderService{orders: []*domain.Order{sampleOrder()}}
	e := newOrderApp(svc)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/v1/admin/orders"},
		{http.MethodGet, "/v1/admin/stats"},
		{http.MethodPatch, "/v1/admin/orders/o1/status"},
	} {
		rec := doJSON(e, route.method, route.path, `{"status":"confirmed"}`, "customer-token")
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s %s: expected 403, got %d", route.method, route.path, rec.Code)
		}
	}
}

func TestOrderHandler_List_OwnOrdersOnly(t *testing.T) {
	mine := sampleOrder()
	other := sampleOrder()
	other.ID = "o2"
	other.Number = "ORD-0000000000AA"
	other.UserID = "u2"
	svc := &stubOrderService{orders: []*domain.Order{mine, other}}
	e := newOrderApp(svc)

	rec := doJSON(e, http.MethodGet, "/v1/orders", "", "customer-token")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, mine.Number) {
		t.Fatalf("own order missing: %s", body)
	}
	if strings.Contains(body, other.Number) {
		t.Fatalf("another user's order leaked: %s", body)
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	svc := &stubOrderService{}
	e := newOrderApp(svc)

	rec := doJSON(e, http.MethodPatch, "/v1/admin/orders/o1/status", `{"status":"shipped"}`, "admin-token")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.updatedID != "o1" || svc.updatedTo != domain.StatusShipped {
		t.Fatalf("unexpected update call: id=%q status=%q", svc.updatedID, svc.updatedTo)
	}
}

func TestOrderHandler_UpdateStatus_UnknownStatus(t *testing.T) {
	svc := &stubOrderService{}
	e := newOrderApp(svc)

	rec := doJSON(e, http.MethodPatch, "/v1/admin/orders/o1/status", `{"status":"cancelled"}`, "admin-token")

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if svc.updatedID != "" {
		t.Fatalf("service must not be called for unknown status")
	}
}

func TestOrderHandler_UpdateStatus_BackwardRejected(t *testing.T) {
	svc := &stubOrderService{updateErr: domain.ErrInvalidTransition}
	h := NewOrderHandler(svc)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPatch, "/v1/admin/orders/o1/status", strings.NewReader(`{"status":"pending"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	err := h.UpdateStatus(c)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestOrderHandler_Stats(t *testing.T) {
	svc := &stubOrderService{stats: &ports.StatsResult{
		TotalRevenue: decimal.RequireFromString("500.00"),
		TotalProfit:  decimal.RequireFromString("125.00"),
		TotalOrders:  4,
		Monthly: []ports.MonthlyStat{
			{Month: "2026-08", Orders: 4, Revenue: decimal.RequireFromString("500.00")},
		},
	}}
	e := newOrderApp(svc)

	rec := doJSON(e, http.MethodGet, "/v1/admin/stats", "", "admin-token")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`"total_orders":4`, `"2026-08"`, `"125"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("stats response missing %s: %s", want, body)
		}
	}
}

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

	"github.com/shoplane/storefront-system/internal/core/domain"
	"github.com/shoplane/storefront-system/internal/core/ports"
)

type stubProductService struct {
	products map[string]*domain.Product
	created  *ports.ProductInput
	deleted  string
}

func newStubProductService() *stubProductService {
	return &stubProductService{products: map[string]*domain.Product{}}
}

func (s *stubProductService) ListProducts(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProductService) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (s *stubProductService) CreateProduct(_ context.Context, in ports.ProductInput) (*domain.Product, error) {
	s.created = &in
	p := &domain.Product{
		ID:          "p1",
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Stock:       in.Stock,
		Category:    in.Category,
		CreatedAt:   time.Now().UTC(),
	}
	s.products[p.ID] = p
	return p, nil
}

func (s *stubProductService) UpdateProduct(_ context.Context, id string, in ports.ProductInput) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	p.Name = in.Name
	p.Price = in.Price
	p.Stock = in.Stock
	return p, nil
}

func (s *stubProductService) DeleteProduct(_ context.Context, id string) error {
	if _, ok := s.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(s.products, id)
	s.deleted = id
	return nil
}

func newProductContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProductHandler_Create(t *testing.T) {
	svc := newStubProductService()
	h := NewProductHandler(svc)
	c, rec := newProductContext(t, http.MethodPost, "/v1/products",
		`{"name":"Walnut Desk","description":"Solid walnut","price":"249.99","stock":10,"category":"furniture"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.created == nil {
		t.Fatalf("service not called")
	}
	if !svc.created.Price.Equal(decimal.RequireFromString("249.99")) {
		t.Fatalf("price mangled: %s", svc.created.Price)
	}
}

func TestProductHandler_Create_MissingFields(t *testing.T) {
	h := NewProductHandler(newStubProductService())
	c, _ := newProductContext(t, http.MethodPost, "/v1/products", `{"name":"Walnut Desk"}`)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	h := NewProductHandler(newStubProductService())
	c, _ := newProductContext(t, http.MethodGet, "/v1/products/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Get(c)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_List(t *testing.T) {
	svc := newStubProductService()
	svc.products["p1"] = &domain.Product{
		ID: "p1", Name: "Walnut Desk", Price: decimal.RequireFromString("249.99"), Stock: 10,
	}
	h := NewProductHandler(svc)
	c, rec := newProductContext(t, http.MethodGet, "/v1/products", "")

	if err := h.List(c); err != nil {
		t.Fatalf("list error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Walnut Desk") {
		t.Fatalf("list missing product: %s", rec.Body.String())
	}
}

func TestProductHandler_Delete(t *testing.T) {
	svc := newStubProductService()
	svc.products["p1"] = &domain.Product{ID: "p1", Name: "Walnut Desk"}
	h := NewProductHandler(svc)
	c, rec := newProductContext(t, http.MethodDelete, "/v1/products/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.deleted != "p1" {
		t.Fatalf("service not called")
	}
}

package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shoplane/storefront-system/internal/core/domain"
	"github.com/shoplane/storefront-system/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type productRequest struct {
	Name        string          `json:"name"        validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price"       validate:"required"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"       validate:"gte=0"`
	Category    string          `json:"category"    validate:"required"`
}

type productResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
}

type listProductsResponse struct {
	Products []productResponse `json:"products"`
}

func toProductInput(req productRequest) ports.ProductInput {
	return ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Stock:       req.Stock,
		Category:    req.Category,
	}
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Stock:       p.Stock,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt.UTC(),
	}
}

func toListProductsResponse(products []*domain.Product) listProductsResponse {
	items := make([]productResponse, len(products))
	for i, p := range products {
		items[i] = toProductResponse(p)
	}
	return listProductsResponse{Products: items}
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shoplane/storefront-system/internal/core/domain"
	"github.com/shoplane/storefront-system/internal/core/ports"
)

// CartService implements the order-in-progress use cases. The reducer rules
// (merge on add, quantity floor, line ordering) live on domain.Cart; this
// layer loads, applies, and persists.
type CartService struct {
	store    ports.CartStore
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewCartService(store ports.CartStore, products ports.ProductRepository, log zerolog.Logger) *CartService {
	return &CartService{store: store, products: products, log: log}
}

func (s *CartService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.store.Load(ctx, userID)
}

// AddItem snapshots the product's current catalog name/price into the cart
// line. The snapshot is a display convenience only; checkout reprices from
// the catalog again.
func (s *CartService) AddItem(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(domain.LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Image:     product.Image,
	})

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.UpdateQuantity(productID, quantity)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(productID)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	if err := s.store.Delete(ctx, userID); err != nil {
		return err
	}
	return nil
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shoplane/storefront-system/internal/core/domain"
)

// cartTTL bounds how long an abandoned cart survives. Every save refreshes
// the clock, so an active cart never expires mid-session.
const cartTTL = 30 * 24 * time.Hour

// CartStore persists one cart per user as a JSON document in Redis.
// Key format: cart:<user_id>
type CartStore struct {
	client *redis.Client
}

// NewCartStore creates a CartStore wrapping the given Redis client.
func NewCartStore(client *redis.Client) *CartStore {
	return &CartStore{client: client}
}

// Load returns the user's cart, or an empty cart when none is stored.
func (s *CartStore) Load(ctx context.Context, userID string) (*domain.Cart, error) {
	raw, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.NewCart(userID), nil
		}
		return nil, fmt.Errorf("cart load: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("cart decode: %w", err)
	}
	return &cart, nil
}

// Save stores the cart and refreshes its TTL.
func (s *CartStore) Save(ctx context.Context, cart *domain.Cart) error {
	cart.UpdatedAt = time.Now().UTC()

	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("cart encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key(cart.UserID), raw, cartTTL).Err(); err != nil {
		return fmt.Errorf("cart save: %w", err)
	}
	return nil
}

// Delete removes the user's cart. Deleting an absent cart is not an error.
func (s *CartStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("cart delete: %w", err)
	}
	return nil
}

func (s *CartStore) key(userID string) string {
	return "cart:" + userID
}

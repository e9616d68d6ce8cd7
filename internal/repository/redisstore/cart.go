package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/negociofacil/pos-api/internal/domain"
)

// CartStore keeps each tenant's pending cart in Redis. Carts are session
// state only: they expire after the TTL and are dropped on checkout.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the tenant's cart, or an empty cart when none is stored.
func (s *CartStore) Get(ctx context.Context, tenantID string) (*domain.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(tenantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &domain.Cart{TenantID: tenantID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}

	return &cart, nil
}

func (s *CartStore) Set(ctx context.Context, cart *domain.Cart) error {
	cart.UpdatedAt = time.Now()

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err := s.client.Set(ctx, cartKey(cart.TenantID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *CartStore) Delete(ctx context.Context, tenantID string) error {
	if err := s.client.Del(ctx, cartKey(tenantID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cartKey(tenantID string) string {
	return fmt.Sprintf("cart:%s", tenantID)
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sadiko81-hub/wonderdiina-website/internal/cart/domain"
	"github.com/sadiko81-hub/wonderdiina-website/internal/currency"
)

const (
	cartKeyPrefix     = "wonderdiina:cart:"     // Serialized cart lines: wonderdiina:cart:{session_id}
	currencyKeyPrefix = "wonderdiina:currency:" // Currency preference: wonderdiina:currency:{session_id}

	// DefaultCartTTL matches how long an abandoned browser cart is kept.
	DefaultCartTTL = 30 * 24 * time.Hour
)

// CartRepository persists carts and currency preferences in Redis, one
// record per browser session. Records are always written whole; there is
// no partial merge.
type CartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartRepository creates a CartRepository with the default TTL.
func NewCartRepository(client *redis.Client) *CartRepository {
	return NewCartRepositoryWithTTL(client, DefaultCartTTL)
}

// NewCartRepositoryWithTTL creates a CartRepository with a custom TTL.
func NewCartRepositoryWithTTL(client *redis.Client, ttl time.Duration) *CartRepository {
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &CartRepository{client: client, ttl: ttl}
}

// LoadCart returns the persisted cart for a session. A missing record
// yields an empty cart. A malformed record also yields an empty cart:
// a corrupted persisted cart must never break the storefront, so it is
// logged and discarded instead of surfaced.
func (r *CartRepository) LoadCart(ctx context.Context, sessionID string) (domain.Cart, error) {
	data, err := r.client.Get(ctx, r.cartKey(sessionID)).Result()
	if err == redis.Nil {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		log.Printf("[cart] discarding malformed cart record session=%s err=%v", sessionID, err)
		return domain.Cart{}, nil
	}

	return cart, nil
}

// SaveCart overwrites the persisted cart for a session and refreshes its
// TTL.
func (r *CartRepository) SaveCart(ctx context.Context, sessionID string, cart domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err := r.client.Set(ctx, r.cartKey(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

// DeleteCart removes the persisted cart record for a session.
func (r *CartRepository) DeleteCart(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

// LoadPreference returns the persisted currency preference for a
// session, defaulting to MAD when absent or unreadable.
func (r *CartRepository) LoadPreference(ctx context.Context, sessionID string) (currency.Preference, error) {
	code, err := r.client.Get(ctx, r.currencyKey(sessionID)).Result()
	if err == redis.Nil {
		return currency.MAD, nil
	}
	if err != nil {
		return currency.MAD, fmt.Errorf("failed to load currency preference: %w", err)
	}

	return currency.Parse(code), nil
}

// SavePreference overwrites the persisted currency preference for a
// session.
func (r *CartRepository) SavePreference(ctx context.Context, sessionID string, pref currency.Preference) error {
	if err := r.client.Set(ctx, r.currencyKey(sessionID), string(pref), r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save currency preference: %w", err)
	}
	return nil
}

func (r *CartRepository) cartKey(sessionID string) string {
	return fmt.Sprintf("%s%s", cartKeyPrefix, sessionID)
}

func (r *CartRepository) currencyKey(sessionID string) string {
	return fmt.Sprintf("%s%s", currencyKeyPrefix, sessionID)
}

package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/northsidewear/storefront-api/internal/domain"
)

// DefaultTTL is how long an untouched cart survives
const DefaultTTL = 30 * 24 * time.Hour

// RedisStore keeps one serialized cart collection per session key
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisStore creates a cart store. A non-positive ttl falls back to
// DefaultTTL.
func NewRedisStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Load reads the cart collection. A missing key or a payload that fails to
// decode reads as an empty collection.
func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	raw, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	return s.decode(sessionID, []byte(raw)), nil
}

// decode parses a persisted collection. A payload that fails to decode
// reads as empty rather than surfacing an error.
func (s *RedisStore) decode(sessionID string, raw []byte) []domain.CartItem {
	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Warn("Discarding corrupt cart payload",
			zap.String("session", sessionID),
			zap.Error(err),
		)
		return nil
	}
	return items
}

// Save writes the whole collection and refreshes the TTL
func (s *RedisStore) Save(ctx context.Context, sessionID string, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

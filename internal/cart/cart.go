package cart

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/northsidewear/storefront-api/internal/domain"
)

// Store persists a session's cart collection as a whole. Load must treat a
// missing or corrupt persisted value as an empty collection, never as a
// fatal error.
type Store interface {
	Load(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	Save(ctx context.Context, sessionID string, items []domain.CartItem) error
}

// Service owns all cart mutation. Every write goes through Add/Remove/
// Clear, which run read-modify-persist-notify as one step under the lock
// so the at-most-one-per-(product, size) invariant holds.
type Service struct {
	mu     sync.Mutex
	store  Store
	notify *Broadcaster
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a cart service over the given store
func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		notify: NewBroadcaster(),
		logger: logger,
		now:    time.Now,
	}
}

// Add appends a line item for (product, size) with quantity 1. An empty
// size is rejected silently. If the pair is already present the call is a
// no-op. Returns whether the collection changed.
func (s *Service) Add(ctx context.Context, sessionID string, product domain.Product, size string) (bool, error) {
	size = strings.TrimSpace(size)
	if size == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return false, err
	}

	for _, item := range items {
		if item.ProductID == product.ID && item.Size == size {
			return false, nil
		}
	}

	items = append(items, domain.NewCartItem(product, size, s.now()))
	if err := s.store.Save(ctx, sessionID, items); err != nil {
		return false, err
	}

	s.notify.Notify()
	return true, nil
}

// Remove deletes the line item matching (productID, size) if present.
// Returns whether the collection changed.
func (s *Service) Remove(ctx context.Context, sessionID, productID, size string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return false, err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ProductID == productID && item.Size == size {
			continue
		}
		kept = append(kept, item)
	}
	if len(kept) == len(items) {
		return false, nil
	}

	if err := s.store.Save(ctx, sessionID, kept); err != nil {
		return false, err
	}

	s.notify.Notify()
	return true, nil
}

// Contains reports whether a line item for productID exists. With an empty
// size any size of the product matches.
func (s *Service) Contains(ctx context.Context, sessionID, productID, size string) (bool, error) {
	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	for _, item := range items {
		if item.Matches(productID, size) {
			return true, nil
		}
	}
	return false, nil
}

// Items returns the ordered cart collection
func (s *Service) Items(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	return s.store.Load(ctx, sessionID)
}

// Clear empties the cart
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, sessionID, nil); err != nil {
		return err
	}
	s.notify.Notify()
	return nil
}

// Subscribe registers for change notifications. The signal carries no
// payload; subscribers re-query the collection.
func (s *Service) Subscribe() (<-chan struct{}, func()) {
	return s.notify.Subscribe()
}

package catalog

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/northsidewear/storefront-api/internal/domain"
)

// ProductSource is the slice of the content adapter the catalog depends on
type ProductSource interface {
	ProductsPaginated(ctx context.Context, page, limit int, categorySlug string) ([]domain.Product, error)
	Search(ctx context.Context, term string) ([]domain.Product, error)
}

// Session holds the catalog state for one browser session: the active
// query, the pages retrieved so far, the 1-based page cursor and the
// exhaustion flag. Search results are a single unpaginated batch; while a
// search term is active LoadNext does nothing.
type Session struct {
	mu       sync.Mutex
	source   ProductSource
	logger   *zap.Logger
	pageSize int

	query   Query
	items   []domain.Product
	page    int
	hasMore bool
	loading bool
	lastErr error

	// generation tags in-flight fetches; a response issued under an older
	// generation is discarded instead of merged
	generation uint64
}

// Snapshot is the view handed to the presentation layer
type Snapshot struct {
	Items   []domain.Product `json:"items"`
	Page    int              `json:"page"`
	HasMore bool             `json:"has_more"`
	Loading bool             `json:"loading"`
	Error   string           `json:"error,omitempty"`
}

// NewSession creates a session with an empty query and no retrieved pages
func NewSession(source ProductSource, pageSize int, logger *zap.Logger) *Session {
	return &Session{
		source:   source,
		logger:   logger,
		pageSize: pageSize,
		query:    Query{Sort: domain.SortNewest},
		page:     1,
		hasMore:  true,
	}
}

// SetQuery replaces the active query. A change to category, filters or
// search term resets the page state and fetches the first batch; a
// sort-only change reorders the already retrieved items locally.
func (s *Session) SetQuery(ctx context.Context, q Query) error {
	q.Sort = q.Sort.OrDefault()

	s.mu.Lock()
	if !q.RequiresRefetch(s.query) {
		s.query = q
		s.mu.Unlock()
		return nil
	}

	s.query = q
	s.items = nil
	s.page = 1
	s.hasMore = true
	s.lastErr = nil
	s.loading = true
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	var (
		results []domain.Product
		err     error
	)
	if q.SearchTerm != "" {
		results, err = s.source.Search(ctx, q.SearchTerm)
	} else {
		results, err = s.source.ProductsPaginated(ctx, 1, s.pageSize, q.CategorySlug)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		// Superseded by a newer query; drop the response
		return nil
	}

	s.loading = false
	if err != nil {
		s.logger.Error("catalog fetch failed", zap.Error(err))
		s.lastErr = err
		return err
	}

	s.items = results
	if q.SearchTerm != "" {
		s.hasMore = false
	} else {
		s.hasMore = len(results) == s.pageSize
	}
	return nil
}

// LoadNext fetches the next page and appends it. It is a no-op while a
// load is in flight, once the catalog is exhausted, or while a search term
// is active.
func (s *Session) LoadNext(ctx context.Context) error {
	s.mu.Lock()
	if s.loading || !s.hasMore || s.query.SearchTerm != "" {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	gen := s.generation
	next := s.page + 1
	slug := s.query.CategorySlug
	s.mu.Unlock()

	results, err := s.source.ProductsPaginated(ctx, next, s.pageSize, slug)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		return nil
	}

	s.loading = false
	if err != nil {
		s.logger.Error("catalog page fetch failed", zap.Error(err), zap.Int("page", next))
		s.lastErr = err
		return err
	}

	if len(results) == 0 {
		s.hasMore = false
		return nil
	}

	s.items = append(s.items, results...)
	s.page = next
	s.hasMore = len(results) == s.pageSize
	return nil
}

// View returns the retrieved items narrowed by the local predicate filters
// and ordered by the active sort key
func (s *Session) View() []domain.Product {
	s.mu.Lock()
	items := make([]domain.Product, len(s.items))
	copy(items, s.items)
	q := s.query
	s.mu.Unlock()

	filtered := items[:0]
	for _, p := range items {
		if q.Filters.Match(p) {
			filtered = append(filtered, p)
		}
	}
	sortProducts(filtered, q.Sort)
	return filtered
}

// Snapshot returns the current view plus the page cursor and flags
func (s *Session) Snapshot() Snapshot {
	view := s.View()

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Items:   view,
		Page:    s.page,
		HasMore: s.hasMore,
		Loading: s.loading,
	}
	if s.lastErr != nil {
		snap.Error = s.lastErr.Error()
	}
	return snap
}

// Query returns the active query snapshot
func (s *Session) Query() Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

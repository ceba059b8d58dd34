package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/northsidewear/storefront-api/internal/domain"
)

// fakeSource serves synthetic pages and can block per category slug to
// simulate slow upstream responses
type fakeSource struct {
	mu          sync.Mutex
	pageCalls   int
	searchCalls int

	pageFn   func(page, limit int, slug string) ([]domain.Product, error)
	searchFn func(term string) ([]domain.Product, error)

	// blockSlug holds fetches for that category until release is closed
	blockSlug string
	release   chan struct{}
	started   chan struct{}
}

func (f *fakeSource) ProductsPaginated(ctx context.Context, page, limit int, slug string) ([]domain.Product, error) {
	f.mu.Lock()
	f.pageCalls++
	blocked := f.blockSlug != "" && slug == f.blockSlug
	release := f.release
	started := f.started
	f.mu.Unlock()

	if blocked {
		if started != nil {
			started <- struct{}{}
		}
		<-release
	}
	if f.pageFn != nil {
		return f.pageFn(page, limit, slug)
	}
	return makeProducts(slug, page, limit), nil
}

func (f *fakeSource) Search(ctx context.Context, term string) ([]domain.Product, error) {
	f.mu.Lock()
	f.searchCalls++
	f.mu.Unlock()
	if f.searchFn != nil {
		return f.searchFn(term)
	}
	return makeProducts("search", 1, 3), nil
}

func (f *fakeSource) calls() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pageCalls, f.searchCalls
}

func makeProducts(prefix string, page, count int) []domain.Product {
	items := make([]domain.Product, count)
	for i := range items {
		items[i] = domain.Product{
			ID:        fmt.Sprintf("%s-p%d-%d", prefix, page, i),
			Name:      fmt.Sprintf("Dress %d", i),
			Price:     1000,
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Duration(i) * time.Hour),
		}
	}
	return items
}

func newTestSession(src ProductSource, pageSize int) *Session {
	return NewSession(src, pageSize, zap.NewNop())
}

func TestSetQueryFetchesFirstPage(t *testing.T) {
	src := &fakeSource{}
	sess := newTestSession(src, 12)

	err := sess.SetQuery(context.Background(), Query{})
	require.NoError(t, err)

	snap := sess.Snapshot()
	assert.Len(t, snap.Items, 12)
	assert.Equal(t, 1, snap.Page)
	assert.True(t, snap.HasMore)
}

func TestLoadNextAppendsAndAdvancesCursor(t *testing.T) {
	src := &fakeSource{}
	sess := newTestSession(src, 12)

	require.NoError(t, sess.SetQuery(context.Background(), Query{}))
	require.NoError(t, sess.LoadNext(context.Background()))

	snap := sess.Snapshot()
	assert.Len(t, snap.Items, 24)
	assert.Equal(t, 2, snap.Page)
	assert.True(t, snap.HasMore)
}

func TestQueryChangeResetsPaginationBeforeFetchResolves(t *testing.T) {
	src := &fakeSource{}
	sess := newTestSession(src, 12)

	// Accumulate three pages under the first query
	require.NoError(t, sess.SetQuery(context.Background(), Query{}))
	require.NoError(t, sess.LoadNext(context.Background()))
	require.NoError(t, sess.LoadNext(context.Background()))
	require.Equal(t, 3, sess.Snapshot().Page)
	require.Len(t, sess.Snapshot().Items, 36)

	// Hold the fetch for the new category so the reset is observable
	src.mu.Lock()
	src.blockSlug = "dresses"
	src.release = make(chan struct{})
	src.started = make(chan struct{}, 1)
	src.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		done <- sess.SetQuery(context.Background(), Query{CategorySlug: "dresses"})
	}()
	<-src.started

	snap := sess.Snapshot()
	assert.Equal(t, 1, snap.Page)
	assert.Empty(t, snap.Items)
	assert.True(t, snap.Loading)

	close(src.release)
	require.NoError(t, <-done)
	assert.Len(t, sess.Snapshot().Items, 12)
}

func TestSortOnlyChangeDoesNotRefetch(t *testing.T) {
	src := &fakeSource{}
	sess := newTestSession(src, 12)

	require.NoError(t, sess.SetQuery(context.Background(), Query{CategorySlug: "dresses"}))
	pagesBefore, _ := src.calls()

	require.NoError(t, sess.SetQuery(context.Background(), Query{
		CategorySlug: "dresses",
		Sort:         domain.SortPriceAsc,
	}))

	pagesAfter, searches := src.calls()
	assert.Equal(t, pagesBefore, pagesAfter)
	assert.Zero(t, searches)
	assert.Equal(t, domain.SortPriceAsc, sess.Query().Sort)
}

func TestPaginationExhaustion(t *testing.T) {
	src := &fakeSource{
		pageFn: func(page, limit int, slug string) ([]domain.Product, error) {
			if page == 1 {
				return makeProducts(slug, page, limit), nil
			}
			// Short page: 7 of 12
			return makeProducts(slug, page, 7), nil
		},
	}
	sess := newTestSession(src, 12)

	require.NoError(t, sess.SetQuery(context.Background(), Query{}))
	require.NoError(t, sess.LoadNext(context.Background()))

	snap := sess.Snapshot()
	assert.Len(t, snap.Items, 19)
	assert.False(t, snap.HasMore)

	callsBefore, _ := src.calls()
	require.NoError(t, sess.LoadNext(context.Background()))
	callsAfter, _ := src.calls()
	assert.Equal(t, callsBefore, callsAfter, "exhausted session must not call the source")
}

func TestStaleResponseDiscarded(t *testing.T) {
	src := &fakeSource{
		blockSlug: "slow",
		release:   make(chan struct{}),
		started:   make(chan struct{}, 1),
	}
	sess := newTestSession(src, 12)

	done := make(chan error, 1)
	go func() {
		done <- sess.SetQuery(context.Background(), Query{CategorySlug: "slow"})
	}()
	<-src.started

	// Supersede the in-flight query before its response arrives
	require.NoError(t, sess.SetQuery(context.Background(), Query{CategorySlug: "fast"}))

	close(src.release)
	require.NoError(t, <-done)

	snap := sess.Snapshot()
	require.Len(t, snap.Items, 12)
	for _, p := range snap.Items {
		assert.Contains(t, p.ID, "fast-", "stale response must not be merged")
	}
}

func TestSearchIsSingleBatch(t *testing.T) {
	src := &fakeSource{
		searchFn: func(term string) ([]domain.Product, error) {
			return makeProducts("hit", 1, 5), nil
		},
	}
	sess := newTestSession(src, 12)

	require.NoError(t, sess.SetQuery(context.Background(), Query{SearchTerm: "linen"}))

	snap := sess.Snapshot()
	assert.Len(t, snap.Items, 5)
	assert.False(t, snap.HasMore)

	pagesBefore, _ := src.calls()
	require.NoError(t, sess.LoadNext(context.Background()))
	pagesAfter, _ := src.calls()
	assert.Equal(t, pagesBefore, pagesAfter, "search results never paginate")
}

func TestLoadNextReentrancyGuard(t *testing.T) {
	src := &fakeSource{}
	sess := newTestSession(src, 12)
	require.NoError(t, sess.SetQuery(context.Background(), Query{}))

	hold := make(chan struct{})
	src.pageFn = func(page, limit int, slug string) ([]domain.Product, error) {
		if page == 2 {
			<-hold
		}
		return makeProducts(slug, page, limit), nil
	}

	done := make(chan error, 1)
	go func() {
		done <- sess.LoadNext(context.Background())
	}()

	// Wait for the in-flight load to be observable, then re-trigger
	for i := 0; i < 100; i++ {
		if sess.Snapshot().Loading {
			break
		}
		time.Sleep(time.Millisecond)
	}
	require.True(t, sess.Snapshot().Loading)

	pagesBefore, _ := src.calls()
	require.NoError(t, sess.LoadNext(context.Background()))
	pagesAfter, _ := src.calls()
	assert.Equal(t, pagesBefore, pagesAfter, "re-entrant trigger must not start a second fetch")

	close(hold)
	require.NoError(t, <-done)
	assert.Equal(t, 2, sess.Snapshot().Page)
}

func TestFetchFailureKeepsPreviousView(t *testing.T) {
	fail := false
	src := &fakeSource{
		pageFn: func(page, limit int, slug string) ([]domain.Product, error) {
			if fail {
				return nil, errors.New("upstream down")
			}
			return makeProducts(slug, page, limit), nil
		},
	}
	sess := newTestSession(src, 12)
	require.NoError(t, sess.SetQuery(context.Background(), Query{}))

	fail = true
	err := sess.LoadNext(context.Background())
	require.Error(t, err)

	snap := sess.Snapshot()
	assert.Len(t, snap.Items, 12, "failed page load must not clobber retrieved items")
	assert.Equal(t, 1, snap.Page)
	assert.False(t, snap.Loading)
	assert.NotEmpty(t, snap.Error)
}

func TestEmptyNextPageExhausts(t *testing.T) {
	src := &fakeSource{
		pageFn: func(page, limit int, slug string) ([]domain.Product, error) {
			if page > 1 {
				return nil, nil
			}
			return makeProducts(slug, page, limit), nil
		},
	}
	sess := newTestSession(src, 12)
	require.NoError(t, sess.SetQuery(context.Background(), Query{}))
	require.NoError(t, sess.LoadNext(context.Background()))

	snap := sess.Snapshot()
	assert.Len(t, snap.Items, 12)
	assert.False(t, snap.HasMore)
	assert.Equal(t, 1, snap.Page)
}

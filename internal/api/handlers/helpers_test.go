package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/northsidewear/storefront-api/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubReader implements ProductReader with per-method overrides; unset
// methods return empty results
type stubReader struct {
	pages        func(page, limit int, slug string) ([]domain.Product, error)
	byID         func(id string) (*domain.Product, error)
	search       func(term string) ([]domain.Product, error)
	filtered     func(f domain.Filters) ([]domain.Product, error)
	featured     func() ([]domain.Product, error)
	related      func(productID, slug string, limit int) ([]domain.Product, error)
	categories   func() ([]domain.Category, error)
	filterValues func() (*domain.FilterValues, error)
	banners      func() ([]domain.Banner, error)
}

func (s *stubReader) ProductsPaginated(ctx context.Context, page, limit int, slug string) ([]domain.Product, error) {
	if s.pages != nil {
		return s.pages(page, limit, slug)
	}
	return nil, nil
}

func (s *stubReader) ProductByID(ctx context.Context, id string) (*domain.Product, error) {
	if s.byID != nil {
		return s.byID(id)
	}
	return &domain.Product{ID: id}, nil
}

func (s *stubReader) Search(ctx context.Context, term string) ([]domain.Product, error) {
	if s.search != nil {
		return s.search(term)
	}
	return nil, nil
}

func (s *stubReader) Filtered(ctx context.Context, f domain.Filters) ([]domain.Product, error) {
	if s.filtered != nil {
		return s.filtered(f)
	}
	return nil, nil
}

func (s *stubReader) Featured(ctx context.Context) ([]domain.Product, error) {
	if s.featured != nil {
		return s.featured()
	}
	return nil, nil
}

func (s *stubReader) Related(ctx context.Context, productID, slug string, limit int) ([]domain.Product, error) {
	if s.related != nil {
		return s.related(productID, slug, limit)
	}
	return nil, nil
}

func (s *stubReader) Categories(ctx context.Context) ([]domain.Category, error) {
	if s.categories != nil {
		return s.categories()
	}
	return nil, nil
}

func (s *stubReader) FilterValues(ctx context.Context) (*domain.FilterValues, error) {
	if s.filterValues != nil {
		return s.filterValues()
	}
	return &domain.FilterValues{}, nil
}

func (s *stubReader) ActiveBanners(ctx context.Context) ([]domain.Banner, error) {
	if s.banners != nil {
		return s.banners()
	}
	return nil, nil
}

// stubCart implements CartService
type stubCart struct {
	addFn      func(sessionID string, p domain.Product, size string) (bool, error)
	removeFn   func(sessionID, productID, size string) (bool, error)
	containsFn func(sessionID, productID, size string) (bool, error)
	itemsFn    func(sessionID string) ([]domain.CartItem, error)
}

func (s *stubCart) Add(ctx context.Context, sessionID string, p domain.Product, size string) (bool, error) {
	if s.addFn != nil {
		return s.addFn(sessionID, p, size)
	}
	return true, nil
}

func (s *stubCart) Remove(ctx context.Context, sessionID, productID, size string) (bool, error) {
	if s.removeFn != nil {
		return s.removeFn(sessionID, productID, size)
	}
	return false, nil
}

func (s *stubCart) Contains(ctx context.Context, sessionID, productID, size string) (bool, error) {
	if s.containsFn != nil {
		return s.containsFn(sessionID, productID, size)
	}
	return false, nil
}

func (s *stubCart) Items(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	if s.itemsFn != nil {
		return s.itemsFn(sessionID)
	}
	return nil, nil
}

func (s *stubCart) Subscribe() (<-chan struct{}, func()) {
	return make(chan struct{}), func() {}
}

func testLogger() *zap.Logger { return zap.NewNop() }

func perform(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func performRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}

package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/northsidewear/storefront-api/internal/api/middleware"
	"github.com/northsidewear/storefront-api/internal/catalog"
	"github.com/northsidewear/storefront-api/internal/domain"
)

// browseSource is a catalog.ProductSource serving synthetic pages
type browseSource struct {
	err error
}

func (s *browseSource) ProductsPaginated(ctx context.Context, page, limit int, slug string) ([]domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	items := make([]domain.Product, limit)
	for i := range items {
		items[i] = domain.Product{ID: fmt.Sprintf("%s-p%d-%d", slug, page, i), Price: 1000}
	}
	return items, nil
}

func (s *browseSource) Search(ctx context.Context, term string) ([]domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Product{{ID: "hit-1"}, {ID: "hit-2"}}, nil
}

func browseRouter(deps *Deps) *gin.Engine {
	r := gin.New()
	logger := testLogger()
	g := r.Group("/v1")
	g.Use(middleware.SessionMiddleware())
	g.POST("/browse/query", HandleSetBrowseQuery(deps, logger))
	g.POST("/browse/more", HandleBrowseMore(deps, logger))
	g.GET("/browse", HandleGetBrowse(deps, logger))
	return r
}

func browseDeps(src *browseSource) *Deps {
	return &Deps{
		Catalog:  catalog.NewManager(src, 12, testLogger()),
		PageSize: 12,
	}
}

func TestSetBrowseQueryReturnsFirstBatch(t *testing.T) {
	deps := browseDeps(&browseSource{})

	rec := perform(t, browseRouter(deps), http.MethodPost, "/v1/browse/query", map[string]interface{}{
		"category_slug": "dresses",
	})
	expectStatus(t, rec, http.StatusOK)

	body := decodeBody(t, rec)
	if items := body["items"].([]interface{}); len(items) != 12 {
		t.Errorf("items = %d, want 12", len(items))
	}
	if body["page"] != float64(1) {
		t.Errorf("page = %v, want 1", body["page"])
	}
	if body["has_more"] != true {
		t.Errorf("has_more = %v, want true", body["has_more"])
	}
}

func TestSetBrowseQueryUpstreamFailure(t *testing.T) {
	deps := browseDeps(&browseSource{err: errors.New("down")})

	rec := perform(t, browseRouter(deps), http.MethodPost, "/v1/browse/query", map[string]interface{}{})
	expectStatus(t, rec, http.StatusBadGateway)
}

func TestSetBrowseQueryRejectsMalformedBody(t *testing.T) {
	deps := browseDeps(&browseSource{})

	rec := perform(t, browseRouter(deps), http.MethodPost, "/v1/browse/query", nil)
	expectStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestBrowseMoreAdvancesPage(t *testing.T) {
	deps := browseDeps(&browseSource{})
	router := browseRouter(deps)

	first := perform(t, router, http.MethodPost, "/v1/browse/query", map[string]interface{}{})
	expectStatus(t, first, http.StatusOK)

	// Replay the minted session cookie so both requests share state
	cookie := first.Result().Cookies()
	req := func(method, path string) *http.Request {
		r, _ := http.NewRequest(method, path, nil)
		for _, c := range cookie {
			r.AddCookie(c)
		}
		return r
	}

	rec := performRequest(router, req(http.MethodPost, "/v1/browse/more"))
	expectStatus(t, rec, http.StatusOK)

	body := decodeBody(t, rec)
	if body["page"] != float64(2) {
		t.Errorf("page = %v, want 2", body["page"])
	}
	if items := body["items"].([]interface{}); len(items) != 24 {
		t.Errorf("items = %d, want 24", len(items))
	}

	// The snapshot survives a plain read on the same session
	rec = performRequest(router, req(http.MethodGet, "/v1/browse"))
	expectStatus(t, rec, http.StatusOK)
	if body := decodeBody(t, rec); body["page"] != float64(2) {
		t.Errorf("page after read = %v, want 2", body["page"])
	}
}

func TestBrowseSearchPinsPagination(t *testing.T) {
	deps := browseDeps(&browseSource{})

	rec := perform(t, browseRouter(deps), http.MethodPost, "/v1/browse/query", map[string]interface{}{
		"search_term": "linen",
	})
	expectStatus(t, rec, http.StatusOK)

	body := decodeBody(t, rec)
	if body["has_more"] != false {
		t.Errorf("search snapshot must not report more pages")
	}
	if items := body["items"].([]interface{}); len(items) != 2 {
		t.Errorf("items = %d, want 2", len(items))
	}
}

func TestGetBrowseFreshSessionIsEmpty(t *testing.T) {
	deps := browseDeps(&browseSource{})

	rec := perform(t, browseRouter(deps), http.MethodGet, "/v1/browse", nil)
	expectStatus(t, rec, http.StatusOK)

	body := decodeBody(t, rec)
	if body["page"] != float64(1) {
		t.Errorf("page = %v, want 1", body["page"])
	}
}

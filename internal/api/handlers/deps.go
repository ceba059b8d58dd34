package handlers

import (
	"context"

	"github.com/northsidewear/storefront-api/internal/catalog"
	"github.com/northsidewear/storefront-api/internal/checkout"
	"github.com/northsidewear/storefront-api/internal/domain"
)

// ProductReader is the content-store surface the handlers read from
type ProductReader interface {
	ProductsPaginated(ctx context.Context, page, limit int, categorySlug string) ([]domain.Product, error)
	ProductByID(ctx context.Context, id string) (*domain.Product, error)
	Search(ctx context.Context, term string) ([]domain.Product, error)
	Filtered(ctx context.Context, filters domain.Filters) ([]domain.Product, error)
	Featured(ctx context.Context) ([]domain.Product, error)
	Related(ctx context.Context, productID, categorySlug string, limit int) ([]domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	FilterValues(ctx context.Context) (*domain.FilterValues, error)
	ActiveBanners(ctx context.Context) ([]domain.Banner, error)
}

// CartService is the cart surface the handlers mutate and query
type CartService interface {
	Add(ctx context.Context, sessionID string, product domain.Product, size string) (bool, error)
	Remove(ctx context.Context, sessionID, productID, size string) (bool, error)
	Contains(ctx context.Context, sessionID, productID, size string) (bool, error)
	Items(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	Subscribe() (<-chan struct{}, func())
}

// Deps bundles what the handlers need
type Deps struct {
	Content  ProductReader
	Catalog  *catalog.Manager
	Cart     CartService
	Checkout *checkout.Builder
	PageSize int
	// HomePageSize caps the featured home grid; zero means uncapped
	HomePageSize int
}

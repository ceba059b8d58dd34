package content

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/northsidewear/storefront-api/internal/domain"
	"github.com/northsidewear/storefront-api/pkg/errors"
)

// Adapter exposes typed fetch operations over the raw query client
type Adapter struct {
	client *Client
	logger *zap.Logger
}

// NewAdapter creates a content adapter on top of an existing client
func NewAdapter(client *Client, logger *zap.Logger) *Adapter {
	return &Adapter{
		client: client,
		logger: logger,
	}
}

// ProductsPaginated fetches one browse page. Pages are 1-based. An empty
// categorySlug fetches across the whole catalog.
func (a *Adapter) ProductsPaginated(ctx context.Context, page, limit int, categorySlug string) ([]domain.Product, error) {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	end := page * limit

	var (
		query  string
		params map[string]interface{}
	)
	if categorySlug != "" {
		query = fmt.Sprintf(ProductsByCategoryPaginatedTemplate, start, end, productFields)
		params = map[string]interface{}{"slug": categorySlug}
	} else {
		query = fmt.Sprintf(ProductsPaginatedTemplate, start, end, productFields)
	}

	var products []domain.Product
	if err := a.client.Execute(ctx, query, params, &products); err != nil {
		return nil, fmt.Errorf("failed to fetch products page %d: %w", page, err)
	}
	return products, nil
}

// ProductByID fetches a single product, returning a not-found error when
// the id has no record
func (a *Adapter) ProductByID(ctx context.Context, id string) (*domain.Product, error) {
	query := fmt.Sprintf(ProductByIDQueryTemplate, productFields)

	var product domain.Product
	if err := a.client.Execute(ctx, query, map[string]interface{}{"id": id}, &product); err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	if product.ID == "" {
		return nil, errors.NewNotFound("product", id)
	}
	return &product, nil
}

// Search matches the term case-insensitively against name, fabric, dress
// type and description. Results are a single unpaginated batch.
func (a *Adapter) Search(ctx context.Context, term string) ([]domain.Product, error) {
	query := fmt.Sprintf(SearchQueryTemplate, productFields)
	params := map[string]interface{}{"keyword": "*" + term + "*"}

	var products []domain.Product
	if err := a.client.Execute(ctx, query, params, &products); err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// Filtered fetches products matching a structured filter set. Sold-out
// items are excluded; results are newest first. Price bounds compare
// against the effective price.
func (a *Adapter) Filtered(ctx context.Context, filters domain.Filters) ([]domain.Product, error) {
	conditions := []string{`_type == "product"`, `soldOut != true`}
	params := map[string]interface{}{}

	if filters.CategorySlug != "" {
		conditions = append(conditions, `category->slug.current == $categorySlug`)
		params["categorySlug"] = filters.CategorySlug
	}
	if filters.DressType != "" {
		conditions = append(conditions, `dressType == $dressType`)
		params["dressType"] = filters.DressType
	}
	if filters.Size != "" {
		conditions = append(conditions, `$size in sizes`)
		params["size"] = filters.Size
	}
	if filters.Occasion != "" {
		conditions = append(conditions, `$occasion in occasion`)
		params["occasion"] = filters.Occasion
	}
	if filters.MinPrice != nil {
		conditions = append(conditions, `coalesce(offerPrice, price) >= $minPrice`)
		params["minPrice"] = *filters.MinPrice
	}
	if filters.MaxPrice != nil {
		conditions = append(conditions, `coalesce(offerPrice, price) <= $maxPrice`)
		params["maxPrice"] = *filters.MaxPrice
	}

	query := fmt.Sprintf(`*[%s] {%s} | order(_createdAt desc)`, strings.Join(conditions, " && "), productFields)

	var products []domain.Product
	if err := a.client.Execute(ctx, query, params, &products); err != nil {
		return nil, fmt.Errorf("failed to fetch filtered products: %w", err)
	}
	return products, nil
}

// Featured fetches featured, in-stock products
func (a *Adapter) Featured(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(FeaturedQueryTemplate, productFields)

	var products []domain.Product
	if err := a.client.Execute(ctx, query, nil, &products); err != nil {
		return nil, fmt.Errorf("failed to fetch featured products: %w", err)
	}
	return products, nil
}

// Related fetches up to limit in-stock products from the same category,
// excluding the product itself
func (a *Adapter) Related(ctx context.Context, productID, categorySlug string, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 4
	}
	query := fmt.Sprintf(RelatedQueryTemplate, limit, productFields)
	params := map[string]interface{}{
		"productId":    productID,
		"categorySlug": categorySlug,
	}

	var products []domain.Product
	if err := a.client.Execute(ctx, query, params, &products); err != nil {
		return nil, fmt.Errorf("failed to fetch related products: %w", err)
	}
	return products, nil
}

// Categories fetches all category records
func (a *Adapter) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := a.client.Execute(ctx, CategoriesQuery, nil, &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// FilterValues fetches the distinct values present across the catalog for
// each filterable attribute
func (a *Adapter) FilterValues(ctx context.Context) (*domain.FilterValues, error) {
	var values domain.FilterValues
	if err := a.client.Execute(ctx, FilterValuesQuery, nil, &values); err != nil {
		return nil, fmt.Errorf("failed to fetch filter values: %w", err)
	}
	return &values, nil
}

// ActiveBanners fetches banners inside their active date window, ordered
// by priority
func (a *Adapter) ActiveBanners(ctx context.Context) ([]domain.Banner, error) {
	var banners []domain.Banner
	if err := a.client.Execute(ctx, ActiveBannersQuery, nil, &banners); err != nil {
		return nil, fmt.Errorf("failed to fetch banners: %w", err)
	}
	return banners, nil
}

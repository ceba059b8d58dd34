package catalog

import (
	"slices"

	"github.com/northsidewear/storefront-api/internal/domain"
)

// FilterSet holds the local predicate filters applied to retrieved items.
// Empty slices and zero bounds mean "not constrained".
type FilterSet struct {
	Categories  []string `json:"categories,omitempty"`
	DressTypes  []string `json:"dress_types,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Occasions   []string `json:"occasions,omitempty"`
	Fabrics     []string `json:"fabrics,omitempty"`
	Lengths     []string `json:"lengths,omitempty"`
	Necklines   []string `json:"necklines,omitempty"`
	SleeveTypes []string `json:"sleeve_types,omitempty"`
	MinPrice    int64    `json:"min_price,omitempty"`
	MaxPrice    int64    `json:"max_price,omitempty"`
}

// Equal compares two filter sets field by field
func (f FilterSet) Equal(other FilterSet) bool {
	return slices.Equal(f.Categories, other.Categories) &&
		slices.Equal(f.DressTypes, other.DressTypes) &&
		slices.Equal(f.Sizes, other.Sizes) &&
		slices.Equal(f.Occasions, other.Occasions) &&
		slices.Equal(f.Fabrics, other.Fabrics) &&
		slices.Equal(f.Lengths, other.Lengths) &&
		slices.Equal(f.Necklines, other.Necklines) &&
		slices.Equal(f.SleeveTypes, other.SleeveTypes) &&
		f.MinPrice == other.MinPrice &&
		f.MaxPrice == other.MaxPrice
}

// Match reports whether a product passes every active predicate. A filter
// on an attribute the product does not carry passes, matching how the
// storefront treats unclassified items.
func (f FilterSet) Match(p domain.Product) bool {
	if len(f.Categories) > 0 && p.Category.Slug != "" {
		if !slices.Contains(f.Categories, p.Category.Slug) {
			return false
		}
	}
	if len(f.DressTypes) > 0 && p.DressType != "" {
		if !slices.Contains(f.DressTypes, p.DressType) {
			return false
		}
	}
	if len(f.Sizes) > 0 && len(p.Sizes) > 0 {
		if !intersects(f.Sizes, p.Sizes) {
			return false
		}
	}
	if len(f.Occasions) > 0 && len(p.Occasion) > 0 {
		if !intersects(f.Occasions, p.Occasion) {
			return false
		}
	}
	price := p.EffectivePrice()
	if f.MinPrice > 0 && price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && price > f.MaxPrice {
		return false
	}
	if len(f.Fabrics) > 0 && p.Fabric != "" {
		if !slices.Contains(f.Fabrics, p.Fabric) {
			return false
		}
	}
	if len(f.Lengths) > 0 && p.Length != "" {
		if !slices.Contains(f.Lengths, p.Length) {
			return false
		}
	}
	if len(f.Necklines) > 0 && p.Neckline != "" {
		if !slices.Contains(f.Necklines, p.Neckline) {
			return false
		}
	}
	if len(f.SleeveTypes) > 0 && p.SleeveType != "" {
		if !slices.Contains(f.SleeveTypes, p.SleeveType) {
			return false
		}
	}
	return true
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if slices.Contains(b, v) {
			return true
		}
	}
	return false
}

// ParseSort maps a raw sort string onto a sort key, defaulting to newest
func ParseSort(raw string) domain.SortKey {
	return domain.SortKey(raw).OrDefault()
}

// Query is an immutable snapshot of the active catalog selection
type Query struct {
	CategorySlug string         `json:"category_slug,omitempty"`
	SearchTerm   string         `json:"search_term,omitempty"`
	Filters      FilterSet      `json:"filters"`
	Sort         domain.SortKey `json:"sort,omitempty"`
}

// Equal compares all fields of two queries
func (q Query) Equal(other Query) bool {
	return q.CategorySlug == other.CategorySlug &&
		q.SearchTerm == other.SearchTerm &&
		q.Sort == other.Sort &&
		q.Filters.Equal(other.Filters)
}

// RequiresRefetch reports whether replacing prev with q invalidates the
// pages retrieved so far. A sort-only change does not.
func (q Query) RequiresRefetch(prev Query) bool {
	return q.CategorySlug != prev.CategorySlug ||
		q.SearchTerm != prev.SearchTerm ||
		!q.Filters.Equal(prev.Filters)
}

package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/northsidewear/storefront-api/internal/domain"
)

// sortProducts orders items in place by the given key. Sorting is stable:
// items with equal keys keep their prior relative order. Price sorts use
// the effective price; the name sort is locale-aware and case-insensitive.
func sortProducts(items []domain.Product, key domain.SortKey) {
	switch key.OrDefault() {
	case domain.SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].EffectivePrice() < items[j].EffectivePrice()
		})
	case domain.SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].EffectivePrice() > items[j].EffectivePrice()
		})
	case domain.SortName:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(items, func(i, j int) bool {
			return c.CompareString(items[i].Name, items[j].Name) < 0
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	}
}

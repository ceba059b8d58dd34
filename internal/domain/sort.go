package domain

// SortKey determines the ordering of a catalog view
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price-low"
	SortPriceDesc SortKey = "price-high"
	SortName      SortKey = "name"
)

// IsValid checks if the sort key is one of the supported orderings
func (s SortKey) IsValid() bool {
	switch s {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortName:
		return true
	default:
		return false
	}
}

// OrDefault returns the key itself when valid, otherwise the default ordering
func (s SortKey) OrDefault() SortKey {
	if s.IsValid() {
		return s
	}
	return SortNewest
}

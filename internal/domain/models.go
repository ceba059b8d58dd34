package domain

import "time"

// CategoryRef is the category reference denormalized onto a product
type CategoryRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Image is a single product image reference
type Image struct {
	URL string `json:"url"`
}

// Product represents a catalog product as served by the content store.
// Prices are integer currency units.
type Product struct {
	ID               string      `json:"_id"`
	Name             string      `json:"name"`
	Category         CategoryRef `json:"category"`
	Fabric           string      `json:"fabric,omitempty"`
	CareInstructions string      `json:"careInstructions,omitempty"`
	DressType        string      `json:"dressType,omitempty"`
	Sizes            []string    `json:"sizes"`
	Colors           []string    `json:"colors,omitempty"`
	Length           string      `json:"length,omitempty"`
	Neckline         string      `json:"neckline,omitempty"`
	SleeveType       string      `json:"sleeveType,omitempty"`
	Images           []Image     `json:"images"`
	Price            int64       `json:"price"`
	OfferPrice       *int64      `json:"offerPrice,omitempty"`
	Description      string      `json:"description,omitempty"`
	SoldOut          bool        `json:"soldOut"`
	Featured         bool        `json:"featured"`
	Occasion         []string    `json:"occasion,omitempty"`
	CreatedAt        time.Time   `json:"_createdAt"`
}

// EffectivePrice is the discounted price when present and lower than the
// list price, otherwise the list price.
func (p Product) EffectivePrice() int64 {
	if p.OfferPrice != nil && *p.OfferPrice < p.Price {
		return *p.OfferPrice
	}
	return p.Price
}

// HasDiscount reports whether the product carries an active markdown
func (p Product) HasDiscount() bool {
	return p.OfferPrice != nil && *p.OfferPrice < p.Price
}

// MainImage returns the first image URL, or empty if the product has none
func (p Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}

// Category is a standalone category record
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Banner is a promotional entry with an optional active date window
type Banner struct {
	ID         string     `json:"_id"`
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle,omitempty"`
	ImageURL   string     `json:"imageUrl,omitempty"`
	ButtonText string     `json:"buttonText,omitempty"`
	ButtonLink string     `json:"buttonLink,omitempty"`
	Active     bool       `json:"active"`
	Order      int        `json:"order"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
}

// Filters is a structured filter set for a backend catalog fetch.
// Zero values mean "not constrained".
type Filters struct {
	CategorySlug string `json:"category_slug,omitempty"`
	DressType    string `json:"dress_type,omitempty"`
	Size         string `json:"size,omitempty"`
	Occasion     string `json:"occasion,omitempty"`
	MinPrice     *int64 `json:"min_price,omitempty"`
	MaxPrice     *int64 `json:"max_price,omitempty"`
}

// IsZero reports whether no filter is set
func (f Filters) IsZero() bool {
	return f == Filters{}
}

// FilterValues holds the distinct values present across the catalog for
// each filterable attribute
type FilterValues struct {
	DressTypes []string `json:"dressTypes"`
	Sizes      []string `json:"sizes"`
	Occasions  []string `json:"occasions"`
}

// CartItem is one (product, selected size) entry in a cart. The product
// fields are a snapshot taken at add time.
type CartItem struct {
	ID         string      `json:"id"`
	ProductID  string      `json:"product_id"`
	Name       string      `json:"name"`
	Category   CategoryRef `json:"category"`
	ImageURL   string      `json:"image_url,omitempty"`
	Price      int64       `json:"price"`
	OfferPrice *int64      `json:"offer_price,omitempty"`
	SoldOut    bool        `json:"sold_out"`
	Size       string      `json:"size"`
	Quantity   int         `json:"quantity"`
	AddedAt    time.Time   `json:"added_at"`
}

// EffectivePrice mirrors Product.EffectivePrice for the snapshot
func (i CartItem) EffectivePrice() int64 {
	if i.OfferPrice != nil && *i.OfferPrice < i.Price {
		return *i.OfferPrice
	}
	return i.Price
}

// Matches reports whether the line item is for the given product and size.
// An empty size matches any size of the product.
func (i CartItem) Matches(productID, size string) bool {
	if i.ProductID != productID {
		return false
	}
	return size == "" || i.Size == size
}

// NewCartItem builds a line item snapshot for a product and selected size
func NewCartItem(p Product, size string, now time.Time) CartItem {
	return CartItem{
		ID:         p.ID + "-" + size,
		ProductID:  p.ID,
		Name:       p.Name,
		Category:   p.Category,
		ImageURL:   p.MainImage(),
		Price:      p.Price,
		OfferPrice: p.OfferPrice,
		SoldOut:    p.SoldOut,
		Size:       size,
		Quantity:   1,
		AddedAt:    now,
	}
}

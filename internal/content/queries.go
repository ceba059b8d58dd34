package content

// productFields is the projection shared by every product query
const productFields = `
  _id,
  _createdAt,
  name,
  "category": category->{name, "slug": slug.current},
  fabric,
  careInstructions,
  dressType,
  sizes,
  colors,
  length,
  neckline,
  sleeveType,
  "images": images[]{"url": asset->url},
  price,
  offerPrice,
  description,
  soldOut,
  featured,
  occasion
`

// ProductsPaginatedTemplate fetches one browse page. Sold-out items sort
// after in-stock, then newest first. Fill with start, end, fields.
const ProductsPaginatedTemplate = `*[_type == "product"] | order(soldOut asc, _createdAt desc) [%d...%d] {%s}`

// ProductsByCategoryPaginatedTemplate is the category-narrowed browse page
const ProductsByCategoryPaginatedTemplate = `*[_type == "product" && defined(category) && category->slug.current == $slug] | order(soldOut asc, _createdAt desc) [%d...%d] {%s}`

// ProductByIDQueryTemplate fetches a single product
const ProductByIDQueryTemplate = `*[_type == "product" && _id == $id][0] {%s}`

// SearchQueryTemplate matches the keyword against name, fabric, dress type
// and description
const SearchQueryTemplate = `*[_type == "product" && (
  name match $keyword ||
  fabric match $keyword ||
  dressType match $keyword ||
  description match $keyword
)] {%s}`

// FeaturedQueryTemplate fetches featured, in-stock products
const FeaturedQueryTemplate = `*[_type == "product" && featured == true && soldOut != true] {%s}`

// RelatedQueryTemplate fetches in-stock products from the same category,
// excluding the product itself. Fill with limit, fields.
const RelatedQueryTemplate = `*[_type == "product" && category->slug.current == $categorySlug && _id != $productId && soldOut != true][0...%d] {%s}`

// CategoriesQuery fetches all category records
const CategoriesQuery = `*[_type == "category"] { _id, name, "slug": slug.current }`

// FilterValuesQuery fetches the distinct values present across the catalog
// for each filterable attribute
const FilterValuesQuery = `{
  "dressTypes": array::unique(*[_type == "product"].dressType),
  "sizes": array::unique(*[_type == "product"].sizes[]),
  "occasions": array::unique(*[_type == "product"].occasion[])
}`

// ActiveBannersQuery fetches banners inside their active date window,
// ordered by the explicit priority field
const ActiveBannersQuery = `*[_type == "banner" && active == true && (
  !defined(startDate) || startDate <= now()
) && (
  !defined(endDate) || endDate >= now()
)] | order(order asc) {
  _id,
  title,
  subtitle,
  "imageUrl": image.asset->url,
  buttonText,
  buttonLink,
  active,
  order,
  startDate,
  endDate
}`

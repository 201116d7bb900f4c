package repo

// ProductFilter carries the optional constraints of a product query.
// Nil pointer fields impose no constraint; all present fields are combined
// with logical AND.
type ProductFilter struct {
	Category       string // exact, case-sensitive match on category_name
	Query          string // case-insensitive substring match on title
	MinPrice       *float64
	MaxPrice       *float64
	MinRating      *float64
	BestSellerOnly bool
	Offset         *int
	Limit          *int
}

package repo

// ProductFilter narrows a product listing.
type ProductFilter struct {
	Name         string
	Category     string
	LowStockOnly bool
	Offset       *int
	Limit        *int
}

// internal/core/domain/sort.go
package domain

import "sort"

// SortField selects the attribute a sort orders by.
type SortField string

const (
	SortByPrice    SortField = "price"
	SortByQuantity SortField = "quantity"
	SortByCategory SortField = "category"
)

// SortDirection selects ascending or descending order.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortSpec is an explicit sort and filter specification. Price and quantity
// sorts are tiered by the fixed category rank first, then ordered by the
// field in the requested direction within each tier. A category sort orders
// by rank alone. Category, when set, narrows the result to case-insensitive
// matches before sorting.
type SortSpec struct {
	Field     SortField
	Direction SortDirection
	Category  Category
}

// Sorted returns a new ordering of the product collection according to the
// spec. The stored collection is not touched; the products themselves are
// shared. The sort is stable, so equal elements keep collection order.
func (inv *Inventory) Sorted(spec SortSpec) []*Product {
	var view []*Product
	for _, p := range inv.products {
		if spec.Category != "" && !p.Category.Equal(spec.Category) {
			continue
		}
		view = append(view, p)
	}

	sort.SliceStable(view, func(i, j int) bool {
		return spec.less(view[i], view[j])
	})
	return view
}

// Sort reorders the stored collection in place according to the spec's field
// and direction. The category filter is ignored here: filtering is always a
// view, never a mutation of the collection.
func (inv *Inventory) Sort(spec SortSpec) {
	spec.Category = ""
	inv.products = inv.Sorted(spec)
}

func (s SortSpec) less(a, b *Product) bool {
	ra, rb := a.Category.Rank(), b.Category.Rank()
	if s.Field == SortByCategory {
		if s.Direction == Descending {
			return ra > rb
		}
		return ra < rb
	}

	// Category tiers come first regardless of direction.
	if ra != rb {
		return ra < rb
	}

	var cmp int
	switch s.Field {
	case SortByQuantity:
		switch {
		case a.Quantity < b.Quantity:
			cmp = -1
		case a.Quantity > b.Quantity:
			cmp = 1
		}
	default: // SortByPrice
		cmp = a.Price.Cmp(b.Price)
	}

	if s.Direction == Descending {
		return cmp > 0
	}
	return cmp < 0
}

package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amelnyk/larder/internal/core/domain"
	"github.com/amelnyk/larder/test/helpers"
)

func stockedInventory() *domain.Inventory {
	inv := domain.New()
	add := func(name string, category domain.Category, price float64, quantity int) {
		inv.Add(helpers.CreateTestProduct(func(p *domain.Product) {
			p.Name = name
			p.Category = category
			p.Price = decimal.NewFromFloat(price)
			p.Quantity = quantity
		}))
	}
	add("Bread", "Bakery", 2.10, 15)
	add("Cola", domain.CategoryDrinks, 1.80, 30)
	add("Apple", domain.CategoryFruit, 1.50, 10)
	add("Fudge", domain.CategorySweets, 3.40, 5)
	add("Pear", domain.CategoryFruit, 1.20, 25)
	return inv
}

func sortedNames(products []*domain.Product) []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return names
}

func TestInventory_Sorted(t *testing.T) {
	tests := []struct {
		name     string
		spec     domain.SortSpec
		expected []string
	}{
		{
			name:     "price_ascending_tiers_by_category_rank",
			spec:     domain.SortSpec{Field: domain.SortByPrice, Direction: domain.Ascending},
			expected: []string{"Pear", "Apple", "Cola", "Fudge", "Bread"},
		},
		{
			name:     "price_descending_keeps_category_tiers",
			spec:     domain.SortSpec{Field: domain.SortByPrice, Direction: domain.Descending},
			expected: []string{"Apple", "Pear", "Cola", "Fudge", "Bread"},
		},
		{
			name:     "quantity_ascending",
			spec:     domain.SortSpec{Field: domain.SortByQuantity, Direction: domain.Ascending},
			expected: []string{"Apple", "Pear", "Cola", "Fudge", "Bread"},
		},
		{
			name:     "category_sort_is_stable_within_tiers",
			spec:     domain.SortSpec{Field: domain.SortByCategory, Direction: domain.Ascending},
			expected: []string{"Apple", "Pear", "Cola", "Fudge", "Bread"},
		},
		{
			name:     "category_descending_reverses_tiers",
			spec:     domain.SortSpec{Field: domain.SortByCategory, Direction: domain.Descending},
			expected: []string{"Bread", "Fudge", "Cola", "Apple", "Pear"},
		},
		{
			name:     "category_filter_narrows_before_sorting",
			spec:     domain.SortSpec{Field: domain.SortByPrice, Direction: domain.Ascending, Category: "fruit"},
			expected: []string{"Pear", "Apple"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := stockedInventory()
			original := sortedNames(inv.Products())

			view := inv.Sorted(tt.spec)

			assert.Equal(t, tt.expected, sortedNames(view))
			assert.Equal(t, original, sortedNames(inv.Products()),
				"Sorted must not touch the stored order")
		})
	}
}

func TestInventory_Sort(t *testing.T) {
	t.Run("reorders_the_stored_collection", func(t *testing.T) {
		inv := stockedInventory()

		inv.Sort(domain.SortSpec{Field: domain.SortByPrice, Direction: domain.Ascending})

		assert.Equal(t, []string{"Pear", "Apple", "Cola", "Fudge", "Bread"},
			sortedNames(inv.Products()))
	})

	t.Run("ignores_category_filter_so_no_products_are_dropped", func(t *testing.T) {
		inv := stockedInventory()

		inv.Sort(domain.SortSpec{
			Field:     domain.SortByPrice,
			Direction: domain.Ascending,
			Category:  domain.CategoryFruit,
		})

		require.Equal(t, 5, inv.Len())
	})
}

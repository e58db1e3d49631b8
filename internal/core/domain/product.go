// internal/core/domain/product.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category represents a product category. Categories are stored verbatim but
// compared case-insensitively.
type Category string

// Categories with a fixed display rank. Anything else sorts after them.
const (
	CategoryFruit  Category = "Fruit"
	CategoryDrinks Category = "Drinks"
	CategorySweets Category = "Sweets"
)

const unrankedCategory = 4

// Rank returns the fixed display rank of the category: Fruit=1, Drinks=2,
// Sweets=3, everything else 4.
func (c Category) Rank() int {
	switch c {
	case CategoryFruit:
		return 1
	case CategoryDrinks:
		return 2
	case CategorySweets:
		return 3
	default:
		return unrankedCategory
	}
}

// Equal reports whether two categories match, ignoring case.
func (c Category) Equal(other Category) bool {
	return strings.EqualFold(string(c), string(other))
}

// Sale records a single past stock reduction. Sales are immutable once
// appended to a product.
type Sale struct {
	SoldAt   time.Time `json:"sold_at"`
	Quantity int       `json:"quantity"`
}

// Stamped reports whether the sale carries a timestamp. Unstamped sales are
// skipped by report aggregation and stamped with the save-time instant when
// persisted.
func (s Sale) Stamped() bool {
	return !s.SoldAt.IsZero()
}

// InWindow reports whether the sale timestamp falls within [start, end],
// both bounds inclusive. Unstamped sales are never in any window.
func (s Sale) InWindow(start, end time.Time) bool {
	if !s.Stamped() {
		return false
	}
	return !s.SoldAt.Before(start) && !s.SoldAt.After(end)
}

// Product represents a single inventory line item plus its sale history.
// A product is identified by the (name, category) pair, with the category
// compared case-insensitively.
type Product struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	ManufactureDate time.Time       `json:"manufacture_date"`
	ExpiryDate      time.Time       `json:"expiry_date"`
	Category        Category        `json:"category"`
	Sales           []Sale          `json:"sales,omitempty"`
}

// Validate performs domain validation on the product.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("price cannot be negative")
	}
	if p.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	if !p.ManufactureDate.IsZero() && !p.ExpiryDate.IsZero() && p.ExpiryDate.Before(p.ManufactureDate) {
		return fmt.Errorf("expiry_date cannot precede manufacture_date")
	}
	return nil
}

// Is reports whether the product carries the given identity. The name must
// match exactly; the category match ignores case.
func (p *Product) Is(name string, category Category) bool {
	return p.Name == name && p.Category.Equal(category)
}

// ExpiresWithin reports whether the product's expiry date falls within
// [start, end], both bounds inclusive.
func (p *Product) ExpiresWithin(start, end time.Time) bool {
	return !p.ExpiryDate.Before(start) && !p.ExpiryDate.After(end)
}

// SoldWithin sums the quantities of all sales whose timestamp falls within
// [start, end] inclusive. Unstamped sales do not contribute.
func (p *Product) SoldWithin(start, end time.Time) int {
	total := 0
	for _, sale := range p.Sales {
		if sale.InWindow(start, end) {
			total += sale.Quantity
		}
	}
	return total
}

// internal/core/domain/inventory.go
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SellOutcome is the tagged result of a sell operation. The zero value is
// Sold so callers must check the outcome explicitly.
type SellOutcome int

const (
	// Sold means stock was decremented and a sale was recorded.
	Sold SellOutcome = iota
	// SellNotFound means no product matched the requested name.
	SellNotFound
	// SellInsufficientStock means the first name match had less stock than
	// requested. Nothing is mutated.
	SellInsufficientStock
)

// Inventory owns an ordered collection of products. The order is meaningful:
// it is the persisted and displayed order, and by-name lookups resolve to the
// first match in it.
//
// Invariant: no two products share the same (name, category) identity.
//
// Inventory is not safe for concurrent use; the calling layer serializes
// access.
type Inventory struct {
	products []*Product
}

// New returns an empty inventory.
func New() *Inventory {
	return &Inventory{}
}

// Products returns the products in collection order. The returned slice is a
// copy; the products themselves are shared.
func (inv *Inventory) Products() []*Product {
	out := make([]*Product, len(inv.products))
	copy(out, inv.products)
	return out
}

// Len returns the number of products.
func (inv *Inventory) Len() int {
	return len(inv.products)
}

// Add merges p into the inventory. If a product with the same (name,
// category) identity exists, its quantity is incremented by p's quantity and
// every other field keeps the existing entry's values. Otherwise p is
// appended at the end. Add never fails.
func (inv *Inventory) Add(p *Product) (merged bool) {
	for _, existing := range inv.products {
		if existing.Is(p.Name, p.Category) {
			existing.Quantity += p.Quantity
			return true
		}
	}
	inv.products = append(inv.products, p)
	return false
}

// Remove deletes every product whose name matches exactly, regardless of
// category, and returns how many were removed. Removal deliberately keys on
// name alone while Add keys on (name, category); see DESIGN.md.
func (inv *Inventory) Remove(name string) int {
	kept := inv.products[:0]
	removed := 0
	for _, p := range inv.products {
		if p.Name == name {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(inv.products); i++ {
		inv.products[i] = nil
	}
	inv.products = kept
	return removed
}

// Sell attempts to sell qty units of the first product whose name matches
// exactly. On success the product's quantity is decremented and a sale
// stamped at the given instant is appended. Later products with the same name
// under other categories are never considered.
func (inv *Inventory) Sell(name string, qty int, at time.Time) (*Product, SellOutcome) {
	for _, p := range inv.products {
		if p.Name != name {
			continue
		}
		if p.Quantity < qty {
			return p, SellInsufficientStock
		}
		p.Quantity -= qty
		p.Sales = append(p.Sales, Sale{SoldAt: at, Quantity: qty})
		return p, Sold
	}
	return nil, SellNotFound
}

// Update overwrites the quantity and price of the first product whose name
// matches exactly. It reports whether a product was found. The overwrite is
// unconditional; input validation belongs to the caller.
func (inv *Inventory) Update(name string, quantity int, price decimal.Decimal) bool {
	for _, p := range inv.products {
		if p.Name == name {
			p.Quantity = quantity
			p.Price = price
			return true
		}
	}
	return false
}

// FindFirst returns the first product whose name matches exactly, or nil.
func (inv *Inventory) FindFirst(name string) *Product {
	for _, p := range inv.products {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Search returns, in collection order, every product whose name or category
// contains the query as a case-insensitive substring.
func (inv *Inventory) Search(query string) []*Product {
	query = strings.ToLower(query)
	var out []*Product
	for _, p := range inv.products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(string(p.Category)), query) {
			out = append(out, p)
		}
	}
	return out
}

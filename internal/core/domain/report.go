// internal/core/domain/report.go
package domain

import "time"

// ExpiryEntry is one line of an expiry report.
type ExpiryEntry struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Quantity int      `json:"quantity"`
}

// SalesEntry is one line of a sales report. Quantity is the current stock;
// Sold is the total quantity sold within the report window.
type SalesEntry struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Quantity int      `json:"quantity"`
	Sold     int      `json:"sold"`
}

// ExpiryReport returns, in collection order, one entry for every product
// whose expiry date falls within [start, end] inclusive. Entries carry the
// category so duplicate names across categories stay distinguishable.
func (inv *Inventory) ExpiryReport(start, end time.Time) []ExpiryEntry {
	var report []ExpiryEntry
	for _, p := range inv.products {
		if p.ExpiresWithin(start, end) {
			report = append(report, ExpiryEntry{
				Name:     p.Name,
				Category: p.Category,
				Quantity: p.Quantity,
			})
		}
	}
	return report
}

// SalesReport returns, in collection order, one entry per product with the
// total quantity sold within [start, end] inclusive. Products with no sales
// in the window still appear with Sold = 0. Sales without a timestamp are
// skipped rather than failing the report.
func (inv *Inventory) SalesReport(start, end time.Time) []SalesEntry {
	report := make([]SalesEntry, 0, len(inv.products))
	for _, p := range inv.products {
		report = append(report, SalesEntry{
			Name:     p.Name,
			Category: p.Category,
			Quantity: p.Quantity,
			Sold:     p.SoldWithin(start, end),
		})
	}
	return report
}

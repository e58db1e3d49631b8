// internal/core/services/ledger.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amelnyk/larder/internal/core/domain"
	"github.com/amelnyk/larder/internal/core/ports"
)

// Ledger is the application service around the inventory aggregate. It owns
// the in-memory snapshot, saves after every mutating operation and
// maps operation outcomes to status message keys.
//
// Ledger is single-writer: the calling layer must serialize access.
type Ledger struct {
	inv    *domain.Inventory
	store  ports.InventoryStore
	logger *slog.Logger
	now    func() time.Time
}

// NewLedger creates a ledger backed by the given store. Call Load before
// invoking any operation.
func NewLedger(store ports.InventoryStore, logger *slog.Logger) *Ledger {
	return &Ledger{
		inv:    domain.New(),
		store:  store,
		logger: logger.With(slog.String("service", "ledger")),
		now:    time.Now,
	}
}

// Load replaces the in-memory snapshot with the persisted one.
func (l *Ledger) Load(ctx context.Context) error {
	inv, err := l.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}
	l.inv = inv
	l.logger.InfoContext(ctx, "inventory loaded",
		slog.Int("products", inv.Len()))
	return nil
}

// Save writes the current snapshot to the store.
func (l *Ledger) Save(ctx context.Context) error {
	if err := l.store.Save(ctx, l.inv); err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}
	return nil
}

// AddProduct validates p and merges it into the inventory, then saves. If a
// product with the same (name, category) identity already exists only its
// quantity grows; the incoming price, description and dates are discarded.
func (l *Ledger) AddProduct(ctx context.Context, p *domain.Product) (domain.Status, error) {
	if err := p.Validate(); err != nil {
		return domain.Status{}, fmt.Errorf("validation failed: %w", err)
	}

	merged := l.inv.Add(p)
	if err := l.Save(ctx); err != nil {
		return domain.Status{}, err
	}

	l.logger.InfoContext(ctx, "product added",
		slog.String("name", p.Name),
		slog.String("category", string(p.Category)),
		slog.Bool("merged", merged))

	return domain.NewStatus(domain.MsgProductAdded).With("product_name", p.Name), nil
}

// RemoveProduct deletes every product with the given name and saves. Removing
// zero products is a silent no-op that still reports success.
func (l *Ledger) RemoveProduct(ctx context.Context, name string) (domain.Status, error) {
	removed := l.inv.Remove(name)
	if err := l.Save(ctx); err != nil {
		return domain.Status{}, err
	}

	l.logger.InfoContext(ctx, "product removed",
		slog.String("name", name),
		slog.Int("removed", removed))

	return domain.NewStatus(domain.MsgProductRemoved).With("product_name", name), nil
}

// SellProduct sells qty units of the first product matching name. The three
// outcomes map to distinct status keys so callers can tell a missing product
// from insufficient stock. Only a successful sale mutates state and saves.
func (l *Ledger) SellProduct(ctx context.Context, name string, qty int) (domain.Status, error) {
	if qty <= 0 {
		return domain.Status{}, fmt.Errorf("sell quantity must be positive, got %d", qty)
	}

	p, outcome := l.inv.Sell(name, qty, l.now())
	switch outcome {
	case domain.SellNotFound:
		return domain.NewStatus(domain.MsgProductNotFound).With("product_name", name), nil
	case domain.SellInsufficientStock:
		return domain.NewStatus(domain.MsgNotEnoughQuantity).
			With("product_name", name).
			With("quantity", strconv.Itoa(qty)), nil
	}

	if err := l.Save(ctx); err != nil {
		return domain.Status{}, err
	}

	l.logger.InfoContext(ctx, "product sold",
		slog.String("name", p.Name),
		slog.Int("quantity", qty),
		slog.Int("remaining", p.Quantity))

	return domain.NewStatus(domain.MsgSoldProduct).
		With("product_name", p.Name).
		With("quantity", strconv.Itoa(qty)), nil
}

// UpdateProduct overwrites the quantity and price of the first product
// matching name, then saves. Negative inputs are rejected here since the
// domain overwrite is unconditional.
func (l *Ledger) UpdateProduct(ctx context.Context, name string, quantity int, price decimal.Decimal) (domain.Status, error) {
	if quantity < 0 {
		return domain.Status{}, fmt.Errorf("quantity cannot be negative, got %d", quantity)
	}
	if price.IsNegative() {
		return domain.Status{}, fmt.Errorf("price cannot be negative, got %s", price)
	}

	if !l.inv.Update(name, quantity, price) {
		return domain.NewStatus(domain.MsgProductNotFound).With("product_name", name), nil
	}

	if err := l.Save(ctx); err != nil {
		return domain.Status{}, err
	}

	l.logger.InfoContext(ctx, "product updated",
		slog.String("name", name),
		slog.Int("quantity", quantity),
		slog.String("price", price.String()))

	return domain.NewStatus(domain.MsgProductUpdated).With("product_name", name), nil
}

// ExpiryReport lists products expiring within [start, end] inclusive.
func (l *Ledger) ExpiryReport(start, end time.Time) []domain.ExpiryEntry {
	return l.inv.ExpiryReport(start, end)
}

// SalesReport aggregates sale volumes within [start, end] inclusive.
func (l *Ledger) SalesReport(start, end time.Time) []domain.SalesEntry {
	return l.inv.SalesReport(start, end)
}

// SortProducts reorders the stored collection and saves, so the new order
// becomes the persisted display order.
func (l *Ledger) SortProducts(ctx context.Context, spec domain.SortSpec) error {
	l.inv.Sort(spec)
	return l.Save(ctx)
}

// View returns a sorted, optionally filtered view without touching the
// stored order.
func (l *Ledger) View(spec domain.SortSpec) []*domain.Product {
	return l.inv.Sorted(spec)
}

// Search returns products whose name or category contains the query,
// ignoring case.
func (l *Ledger) Search(query string) []*domain.Product {
	return l.inv.Search(query)
}

// Products returns the current collection in display order.
func (l *Ledger) Products() []*domain.Product {
	return l.inv.Products()
}

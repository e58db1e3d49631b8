// internal/adapters/file/store.go

// Package file persists an inventory snapshot as a JSON document on disk.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amelnyk/larder/internal/core/domain"
	"github.com/amelnyk/larder/internal/core/ports"
)

const (
	dateLayout            = "2006-01-02"
	timestampLayout       = time.RFC3339
	legacyTimestampLayout = "2006-01-02 15:04:05"
)

// Store reads and writes the inventory snapshot at a fixed path.
type Store struct {
	path   string
	logger *slog.Logger
	now    func() time.Time
}

// Statically assert that *Store implements the InventoryStore port.
var _ ports.InventoryStore = (*Store)(nil)

// NewStore creates a store for the given file path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.With(slog.String("adapter", "file")),
		now:    time.Now,
	}
}

// Persisted document shape: {"products": [...]}.
type inventoryRecord struct {
	Products []productRecord `json:"products"`
}

type productRecord struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	ManufactureDate string          `json:"manufacture_date,omitempty"`
	ExpiryDate      string          `json:"expiry_date"`
	Category        string          `json:"category"`
	Sales           []saleRecord    `json:"sales"`
}

type saleRecord struct {
	Date     string `json:"date,omitempty"`
	Quantity int    `json:"quantity"`
}

// Load reads the snapshot. A missing file yields an empty inventory. A
// malformed product record fails the whole load, except for the two
// documented defaults: a missing manufacture date becomes today, and a
// missing sale timestamp is kept as an unstamped sale. A sale timestamp that
// is present but unparseable is kept unstamped with a warning, so a single
// bad record cannot sink the rest of the ledger.
func (s *Store) Load(ctx context.Context) (*domain.Inventory, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.InfoContext(ctx, "inventory file missing, starting empty",
			slog.String("path", s.path))
		return domain.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory file: %w", err)
	}

	var record inventoryRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode inventory file %s: %w", s.path, err)
	}

	inv := domain.New()
	for i := range record.Products {
		p, err := s.toDomain(ctx, &record.Products[i])
		if err != nil {
			return nil, fmt.Errorf("invalid product record %d: %w", i, err)
		}
		// Duplicate identities in the file merge exactly like live adds:
		// quantities sum, the first record's other fields win.
		inv.Add(p)
	}

	return inv, nil
}

// Save writes the full snapshot. Sales without a timestamp are stamped with
// the save-time instant, so their persisted timestamp reflects when they were
// saved, not when they occurred. The document is written to a temp file and
// renamed into place so a crash mid-write cannot corrupt the previous
// snapshot.
func (s *Store) Save(ctx context.Context, inv *domain.Inventory) error {
	savedAt := s.now()

	products := inv.Products()
	record := inventoryRecord{Products: make([]productRecord, 0, len(products))}
	for _, p := range products {
		record.Products = append(record.Products, s.toRecord(p, savedAt))
	}

	data, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".inventory-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace inventory file: %w", err)
	}

	s.logger.DebugContext(ctx, "inventory saved",
		slog.String("path", s.path),
		slog.Int("products", len(products)))
	return nil
}

func (s *Store) toDomain(ctx context.Context, rec *productRecord) (*domain.Product, error) {
	expiry, err := parseDate(rec.ExpiryDate)
	if err != nil {
		return nil, fmt.Errorf("expiry_date: %w", err)
	}

	var manufacture time.Time
	if rec.ManufactureDate == "" {
		// Documented default: records predating the manufacture_date field
		// get stamped with the load date.
		manufacture = truncateToDate(s.now())
	} else if manufacture, err = parseDate(rec.ManufactureDate); err != nil {
		return nil, fmt.Errorf("manufacture_date: %w", err)
	}

	p := &domain.Product{
		Name:            rec.Name,
		Description:     rec.Description,
		Price:           rec.Price,
		Quantity:        rec.Quantity,
		ManufactureDate: manufacture,
		ExpiryDate:      expiry,
		Category:        domain.Category(rec.Category),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	for _, sale := range rec.Sales {
		if sale.Quantity <= 0 {
			return nil, fmt.Errorf("sale quantity must be positive, got %d", sale.Quantity)
		}
		soldAt, ok := parseTimestamp(sale.Date)
		if !ok && sale.Date != "" {
			s.logger.WarnContext(ctx, "unparseable sale timestamp, keeping sale unstamped",
				slog.String("product", rec.Name),
				slog.String("date", sale.Date))
		}
		p.Sales = append(p.Sales, domain.Sale{SoldAt: soldAt, Quantity: sale.Quantity})
	}

	return p, nil
}

func (s *Store) toRecord(p *domain.Product, savedAt time.Time) productRecord {
	rec := productRecord{
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		Quantity:        p.Quantity,
		ManufactureDate: p.ManufactureDate.Format(dateLayout),
		ExpiryDate:      p.ExpiryDate.Format(dateLayout),
		Category:        string(p.Category),
		Sales:           make([]saleRecord, 0, len(p.Sales)),
	}
	for _, sale := range p.Sales {
		soldAt := sale.SoldAt
		if !sale.Stamped() {
			soldAt = savedAt
		}
		rec.Sales = append(rec.Sales, saleRecord{
			Date:     soldAt.Format(timestampLayout),
			Quantity: sale.Quantity,
		})
	}
	return rec
}

// parseDate accepts the calendar form and, for files written by older
// versions, a full timestamp truncated to its date.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(timestampLayout, value); err == nil {
		return truncateToDate(t), nil
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

// parseTimestamp accepts RFC 3339 and the space-separated legacy form. An
// empty or unparseable value yields an unstamped zero time.
func parseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(timestampLayout, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t, true
	}
	if t, err := time.Parse(legacyTimestampLayout, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// internal/core/ports/inventory_store.go
package ports

import (
	"context"

	"github.com/amelnyk/larder/internal/core/domain"
)

// InventoryStore defines the persistence port for the inventory. The whole
// snapshot is loaded at start and written back after every mutating command.
// This interface is implemented by the file adapter.
type InventoryStore interface {
	// Load reads the persisted snapshot. A missing store yields an empty
	// inventory, not an error.
	Load(ctx context.Context) (*domain.Inventory, error)
	// Save writes the full snapshot, replacing whatever was there.
	Save(ctx context.Context, inv *domain.Inventory) error
}

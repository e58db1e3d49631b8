// internal/core/services/ledger_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/amelnyk/larder/internal/core/domain"
	"github.com/amelnyk/larder/internal/core/services"
	"github.com/amelnyk/larder/test/helpers"
	"github.com/amelnyk/larder/test/mocks"
)

// newLoadedLedger builds a ledger whose store yields the given products on
// Load.
func newLoadedLedger(t *testing.T, store *mocks.MockInventoryStore, products ...*domain.Product) *services.Ledger {
	t.Helper()

	inv := domain.New()
	for _, p := range products {
		inv.Add(p)
	}
	store.EXPECT().Load(gomock.Any()).Return(inv, nil)

	ledger := services.NewLedger(store, helpers.TestLogger())
	require.NoError(t, ledger.Load(context.Background()))
	return ledger
}

func TestLedger_Load(t *testing.T) {
	t.Run("replaces_snapshot_from_store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockInventoryStore(ctrl)

		ledger := newLoadedLedger(t, store, helpers.CreateTestProduct())

		assert.Len(t, ledger.Products(), 1)
	})

	t.Run("propagates_store_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockInventoryStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(nil, errors.New("disk on fire"))

		ledger := services.NewLedger(store, helpers.TestLogger())
		err := ledger.Load(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk on fire")
	})
}

func TestLedger_AddProduct(t *testing.T) {
	t.Run("saves_and_reports_product_added", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockInventoryStore(ctrl)
		ledger := newLoadedLedger(t, store)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		status, err := ledger.AddProduct(context.Background(), helpers.CreateTestProduct())

		require.NoError(t, err)
		assert.Equal(t, domain.MsgProductAdded, status.Key)
		assert.Equal(t, "Apple", status.Params["product_name"])
	})

	t.Run("rejects_invalid_product_without_saving", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockInventoryStore(ctrl)
		ledger := newLoadedLedger(t, store)

		_, err := ledger.AddProduct(context.Background(), helpers.CreateTestProduct(func(p *domain.Product) {
			p.Name = ""
		}))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("merges_duplicate_identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockInventoryStore(ctrl)
		ledger := newLoadedLedger(t, store, helpers.CreateTestProduct())
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		_, err := ledger.AddProduct(context.Background(), helpers.CreateTestProduct(func(p *domain.Product) {
			p.Quantity = 5
			p.Price = decimal.NewFromFloat(9.99)
		}))

		require.NoError(t, err)
		products := ledger.Products()
		require.Len(t, products, 1)
		assert.Equal(t, 15, products[0].Quantity)
		assert.True(t, products[0].Price.Equal(decimal.NewFromFloat(1.50)))
	})

	t.Run("propagates_save_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockInventoryStore(ctrl)
		ledger := newLoadedLedger(t, store)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("readonly filesystem"))

		_, err := ledger.AddProduct(context.Background(), helpers.CreateTestProduct())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "readonly filesystem")
	})
}

func TestLedger_RemoveProduct(t *testing.T) {
	t.Run("removes_and_saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockInventoryStore(ctrl)
		ledger := newLoadedLedger(t, store, helpers.CreateTestProduct())
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		status, err := ledger.RemoveProduct(context.Background(), "Apple")

		require.NoError(t, err)
		assert.Equal(t, domain.MsgProductRemoved, status.Key)
		assert.Empty(t, ledger.Products())
	})

	t.Run("missing_name_still_saves_and_reports_removed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockInventoryStore(ctrl)
		ledger := newLoadedLedger(t, store, helpers.CreateTestProduct())
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		status, err := ledger.RemoveProduct(context.Background(), "Banana")

		require.NoError(t, err)
		assert.Equal(t, domain.MsgProductRemoved, status.Key)
		assert.Len(t, ledger.Products(), 1)
	})
}

func TestLedger_SellProduct(t *testing.T) {
	t.Run("sold_saves_and_carries_parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockInventoryStore(ctrl)
		ledger := newLoadedLedger(t, store, helpers.CreateTestProduct())
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		status, err := ledger.SellProduct(context.Background(), "Apple", 4)

		require.NoError(t, err)
		assert.Equal(t, domain.MsgSoldProduct, status.Key)
		assert.Equal(t, "Apple", status.Params["product_name"])
		assert.Equal(t, "4", status.Params["quantity"])
		assert.Equal(t, 6, ledger.Products()[0].Quantity)
	})

	t.Run("not_found_does_not_save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockInventoryStore(ctrl)
		ledger := newLoadedLedger(t, store)

		status, err := ledger.SellProduct(context.Background(), "Apple", 1)

		require.NoError(t, err)
		assert.Equal(t, domain.MsgProductNotFound, status.Key)
	})

	t.Run("insufficient_stock_does_not_save_or_mutate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockInventoryStore(ctrl)
		ledger := newLoadedLedger(t, store, helpers.CreateTestProduct(func(p *domain.Product) {
			p.Quantity = 15
		}))

		status, err := ledger.SellProduct(context.Background(), "Apple", 20)

		require.NoError(t, err)
		assert.Equal(t, domain.MsgNotEnoughQuantity, status.Key)
		p := ledger.Products()[0]
		assert.Equal(t, 15, p.Quantity)
		assert.Empty(t, p.Sales)
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockInventoryStore(ctrl)
		ledger := newLoadedLedger(t, store)

		_, err := ledger.SellProduct(context.Background(), "Apple", 0)

		require.Error(t, err)
	})
}

func TestLedger_UpdateProduct(t *testing.T) {
	t.Run("updates_and_saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockInventoryStore(ctrl)
		ledger := newLoadedLedger(t, store, helpers.CreateTestProduct())
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		status, err := ledger.UpdateProduct(context.Background(), "Apple", 30, decimal.NewFromFloat(2.25))

		require.NoError(t, err)
		assert.Equal(t, domain.MsgProductUpdated, status.Key)
		assert.Equal(t, 30, ledger.Products()[0].Quantity)
	})

	t.Run("not_found_does_not_save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockInventoryStore(ctrl)
		ledger := newLoadedLedger(t, store)

		status, err := ledger.UpdateProduct(context.Background(), "Apple", 30, decimal.NewFromFloat(2.25))

		require.NoError(t, err)
		assert.Equal(t, domain.MsgProductNotFound, status.Key)
	})

	t.Run("rejects_negative_inputs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockInventoryStore(ctrl)
		ledger := newLoadedLedger(t, store, helpers.CreateTestProduct())

		_, err := ledger.UpdateProduct(context.Background(), "Apple", -1, decimal.NewFromFloat(2.25))
		require.Error(t, err)

		_, err = ledger.UpdateProduct(context.Background(), "Apple", 1, decimal.NewFromFloat(-2.25))
		require.Error(t, err)
	})
}

func TestLedger_SortProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockInventoryStore(ctrl)
	ledger := newLoadedLedger(t, store,
		helpers.CreateTestProduct(func(p *domain.Product) {
			p.Name = "Fudge"
			p.Category = domain.CategorySweets
		}),
		helpers.CreateTestProduct(),
	)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	err := ledger.SortProducts(context.Background(), domain.SortSpec{
		Field:     domain.SortByCategory,
		Direction: domain.Ascending,
	})

	require.NoError(t, err)
	products := ledger.Products()
	assert.Equal(t, "Apple", products[0].Name)
	assert.Equal(t, "Fudge", products[1].Name)
}

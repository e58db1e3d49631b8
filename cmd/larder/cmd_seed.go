// cmd/larder/cmd_seed.go
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/amelnyk/larder/internal/core/domain"
	"github.com/amelnyk/larder/internal/pkg/logger"
)

// larder seed — write a small sample ledger, useful for demos and manual
// testing of the interactive session.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a sample inventory file",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, slogger, ledger, err := setup(cmd)
		if err != nil {
			return err
		}

		ctx := context.WithValue(cmd.Context(), logger.ContextKeySessionID, uuid.New())

		force, _ := cmd.Flags().GetBool("force")
		if err := ledger.Load(ctx); err != nil {
			return err
		}
		if len(ledger.Products()) > 0 && !force {
			return fmt.Errorf("inventory file is not empty, use --force to overwrite")
		}

		for _, p := range sampleProducts() {
			if _, err := ledger.AddProduct(ctx, p); err != nil {
				return fmt.Errorf("failed to seed %q: %w", p.Name, err)
			}
		}

		slogger.Info("sample inventory written")
		fmt.Printf("Seeded %d products.\n", len(ledger.Products()))
		return nil
	},
}

func init() {
	seedCmd.Flags().Bool("force", false, "seed even if the inventory file already has products")
}

func sampleProducts() []*domain.Product {
	date := func(value string) time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return t
	}
	return []*domain.Product{
		{
			Name:            "Apple",
			Description:     "Crisp red apples",
			Price:           decimal.NewFromFloat(1.50),
			Quantity:        40,
			ManufactureDate: date("2024-01-01"),
			ExpiryDate:      date("2024-06-01"),
			Category:        domain.CategoryFruit,
		},
		{
			Name:            "Orange Juice",
			Description:     "Fresh squeezed, 1L",
			Price:           decimal.NewFromFloat(3.20),
			Quantity:        24,
			ManufactureDate: date("2024-02-10"),
			ExpiryDate:      date("2024-03-10"),
			Category:        domain.CategoryDrinks,
		},
		{
			Name:            "Dark Chocolate",
			Description:     "70% cocoa bar",
			Price:           decimal.NewFromFloat(2.75),
			Quantity:        60,
			ManufactureDate: date("2023-11-05"),
			ExpiryDate:      date("2025-11-05"),
			Category:        domain.CategorySweets,
		},
		{
			Name:            "Rye Bread",
			Description:     "Whole grain loaf",
			Price:           decimal.NewFromFloat(2.10),
			Quantity:        15,
			ManufactureDate: date("2024-03-01"),
			ExpiryDate:      date("2024-03-08"),
			Category:        "Bakery",
		},
	}
}

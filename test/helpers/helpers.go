// test/helpers/helpers.go
package helpers

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amelnyk/larder/internal/core/domain"
)

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// Date parses a YYYY-MM-DD literal, panicking on bad test data.
func Date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

// Timestamp parses an RFC 3339 literal, panicking on bad test data.
func Timestamp(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// CreateTestProduct creates a test product
func CreateTestProduct(overrides ...func(*domain.Product)) *domain.Product {
	p := &domain.Product{
		Name:            "Apple",
		Description:     "Crisp red apples",
		Price:           decimal.NewFromFloat(1.50),
		Quantity:        10,
		ManufactureDate: Date("2024-01-01"),
		ExpiryDate:      Date("2024-06-01"),
		Category:        domain.CategoryFruit,
	}

	for _, override := range overrides {
		override(p)
	}

	return p
}

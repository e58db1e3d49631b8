// cmd/larder/cmd_run.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/amelnyk/larder/internal/core/domain"
	"github.com/amelnyk/larder/internal/core/ports"
	"github.com/amelnyk/larder/internal/core/services"
	"github.com/amelnyk/larder/internal/pkg/i18n"
	"github.com/amelnyk/larder/internal/pkg/logger"
	"golang.org/x/text/language"
)

// larder run — the interactive ledger session.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive ledger session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, slogger, ledger, err := setup(cmd)
		if err != nil {
			return err
		}

		ctx := context.WithValue(cmd.Context(), logger.ContextKeySessionID, uuid.New())
		if err := ledger.Load(ctx); err != nil {
			return err
		}

		session := &session{
			in:     bufio.NewScanner(os.Stdin),
			out:    os.Stdout,
			ledger: ledger,
			loc:    i18n.NewCatalog(),
			lang:   cfg.Ledger.Language,
			logger: slogger,
		}
		return session.loop(ctx)
	},
}

// session holds the state of one interactive run.
type session struct {
	in     *bufio.Scanner
	out    io.Writer
	ledger *services.Ledger
	loc    ports.Localizer
	lang   language.Tag
	logger *slog.Logger
}

const menu = `
1. Add product
2. Remove product
3. Sell product
4. Update product
5. Search products
6. Generate expiry report
7. Generate sales report
8. Sort products
9. Save and exit
`

func (s *session) loop(ctx context.Context) error {
	for {
		fmt.Fprint(s.out, menu)
		command, ok := s.prompt("Enter command: ")
		if !ok {
			return s.ledger.Save(ctx)
		}

		cmdCtx := context.WithValue(ctx, logger.ContextKeyCommand, command)
		var err error
		switch command {
		case "1":
			err = s.addProduct(cmdCtx)
		case "2":
			err = s.removeProduct(cmdCtx)
		case "3":
			err = s.sellProduct(cmdCtx)
		case "4":
			err = s.updateProduct(cmdCtx)
		case "5":
			s.searchProducts()
		case "6":
			s.expiryReport()
		case "7":
			s.salesReport()
		case "8":
			err = s.sortProducts(cmdCtx)
		case "9":
			if err := s.ledger.Save(cmdCtx); err != nil {
				return err
			}
			fmt.Fprintln(s.out, "Inventory saved and exiting.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid command.")
		}
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *session) addProduct(ctx context.Context) error {
	name, _ := s.prompt("Enter product name: ")
	description, _ := s.prompt("Enter product description: ")
	price, err := s.promptDecimal("Enter product price: ")
	if err != nil {
		return err
	}
	quantity, err := s.promptInt("Enter product quantity: ")
	if err != nil {
		return err
	}
	manufacture, err := s.promptDate("Enter manufacture date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	expiry, err := s.promptDate("Enter expiry date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	category, _ := s.prompt("Enter product category: ")

	status, err := s.ledger.AddProduct(ctx, &domain.Product{
		Name:            name,
		Description:     description,
		Price:           price,
		Quantity:        quantity,
		ManufactureDate: manufacture,
		ExpiryDate:      expiry,
		Category:        domain.Category(category),
	})
	if err != nil {
		return err
	}
	s.render(status)
	return nil
}

func (s *session) removeProduct(ctx context.Context) error {
	name, _ := s.prompt("Enter product name: ")
	status, err := s.ledger.RemoveProduct(ctx, name)
	if err != nil {
		return err
	}
	s.render(status)
	return nil
}

func (s *session) sellProduct(ctx context.Context) error {
	name, _ := s.prompt("Enter product name: ")
	quantity, err := s.promptInt("Enter quantity to sell: ")
	if err != nil {
		return err
	}
	status, err := s.ledger.SellProduct(ctx, name, quantity)
	if err != nil {
		return err
	}
	s.render(status)
	return nil
}

func (s *session) updateProduct(ctx context.Context) error {
	name, _ := s.prompt("Enter product name: ")
	quantity, err := s.promptInt("Enter new quantity: ")
	if err != nil {
		return err
	}
	price, err := s.promptDecimal("Enter new price: ")
	if err != nil {
		return err
	}
	status, err := s.ledger.UpdateProduct(ctx, name, quantity, price)
	if err != nil {
		return err
	}
	s.render(status)
	return nil
}

func (s *session) searchProducts() {
	query, _ := s.prompt("Enter search text (name or category): ")
	results := s.ledger.Search(query)
	if len(results) == 0 {
		fmt.Fprintln(s.out, "No products matched.")
		return
	}
	for _, p := range results {
		fmt.Fprintf(s.out, "%s - %s - %d - %s\n", p.Name, p.Category, p.Quantity, p.Price)
	}
}

func (s *session) expiryReport() {
	start, err := s.promptDate("Enter start date (YYYY-MM-DD): ")
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	end, err := s.promptDate("Enter end date (YYYY-MM-DD): ")
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	for _, entry := range s.ledger.ExpiryReport(start, end) {
		fmt.Fprintf(s.out, "%s (%s): %d\n", entry.Name, entry.Category, entry.Quantity)
	}
}

func (s *session) salesReport() {
	start, err := s.promptDateTime("Enter start date and time (YYYY-MM-DD HH:MM:SS): ")
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	end, err := s.promptDateTime("Enter end date and time (YYYY-MM-DD HH:MM:SS): ")
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	for _, entry := range s.ledger.SalesReport(start, end) {
		fmt.Fprintf(s.out, "%s (%s): Quantity: %d, Sales Quantity: %d\n",
			entry.Name, entry.Category, entry.Quantity, entry.Sold)
	}
}

func (s *session) sortProducts(ctx context.Context) error {
	fmt.Fprintln(s.out, "Sort by:")
	fmt.Fprintln(s.out, "1. Price")
	fmt.Fprintln(s.out, "2. Quantity")
	fmt.Fprintln(s.out, "3. Category")
	choice, _ := s.prompt("Enter number: ")

	var field domain.SortField
	switch choice {
	case "1":
		field = domain.SortByPrice
	case "2":
		field = domain.SortByQuantity
	case "3":
		field = domain.SortByCategory
	default:
		fmt.Fprintln(s.out, "Invalid option.")
		return nil
	}

	direction := domain.Ascending
	if answer, _ := s.prompt("Descending? (y/N): "); answer == "y" || answer == "Y" {
		direction = domain.Descending
	}

	return s.ledger.SortProducts(ctx, domain.SortSpec{Field: field, Direction: direction})
}

func (s *session) render(status domain.Status) {
	fmt.Fprintln(s.out, s.loc.Render(status.Key, s.lang, status.Params))
}

func (s *session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *session) promptInt(label string) (int, error) {
	raw, _ := s.prompt(label)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return n, nil
}

func (s *session) promptDecimal(label string) (decimal.Decimal, error) {
	raw, _ := s.prompt(label)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", raw)
	}
	return d, nil
}

func (s *session) promptDate(label string) (time.Time, error) {
	raw, _ := s.prompt(label)
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", raw)
	}
	return t, nil
}

func (s *session) promptDateTime(label string) (time.Time, error) {
	raw, _ := s.prompt(label)
	if t, err := time.Parse("2006-01-02 15:04:05", raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date-time %q, want YYYY-MM-DD HH:MM:SS", raw)
	}
	return t, nil
}

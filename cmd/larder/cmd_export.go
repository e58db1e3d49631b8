// cmd/larder/cmd_export.go
package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v3"

	"github.com/amelnyk/larder/internal/core/domain"
	"github.com/amelnyk/larder/internal/pkg/logger"
)

// larder export — render the ledger and both reports into a spreadsheet.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the inventory and reports to an Excel file",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, slogger, ledger, err := setup(cmd)
		if err != nil {
			return err
		}

		ctx := context.WithValue(cmd.Context(), logger.ContextKeySessionID, uuid.New())
		if err := ledger.Load(ctx); err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		from, to, err := exportWindow(cmd)
		if err != nil {
			return err
		}

		workbook, err := buildWorkbook(ledger.Products(),
			ledger.ExpiryReport(from, to),
			ledger.SalesReport(from, to))
		if err != nil {
			return err
		}
		if err := workbook.Save(out); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}

		slogger.Info("export completed")
		fmt.Printf("Exported %d products to %s\n", len(ledger.Products()), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "inventory.xlsx", "output spreadsheet path")
	exportCmd.Flags().String("from", "", "report window start (YYYY-MM-DD), defaults to epoch")
	exportCmd.Flags().String("to", "", "report window end (YYYY-MM-DD), defaults to a year from now")
}

func exportWindow(cmd *cobra.Command) (time.Time, time.Time, error) {
	from := time.Unix(0, 0).UTC()
	to := time.Now().AddDate(1, 0, 0)

	if raw, _ := cmd.Flags().GetString("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date %q", raw)
		}
		from = t
	}
	if raw, _ := cmd.Flags().GetString("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date %q", raw)
		}
		// Make the end bound cover the whole day.
		to = t.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

func buildWorkbook(products []*domain.Product, expiry []domain.ExpiryEntry, sales []domain.SalesEntry) (*xlsx.File, error) {
	workbook := xlsx.NewFile()

	sheet, err := workbook.AddSheet("Inventory")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}
	addHeaderRow(sheet, "Name", "Category", "Description", "Price", "Quantity",
		"Manufacture Date", "Expiry Date", "Sales Recorded")
	for _, p := range products {
		addRow(sheet, p.Name, string(p.Category), p.Description, p.Price.String(),
			strconv.Itoa(p.Quantity),
			p.ManufactureDate.Format("2006-01-02"),
			p.ExpiryDate.Format("2006-01-02"),
			strconv.Itoa(len(p.Sales)))
	}

	sheet, err = workbook.AddSheet("Expiry Report")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}
	addHeaderRow(sheet, "Name", "Category", "Quantity")
	for _, entry := range expiry {
		addRow(sheet, entry.Name, string(entry.Category), strconv.Itoa(entry.Quantity))
	}

	sheet, err = workbook.AddSheet("Sales Report")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}
	addHeaderRow(sheet, "Name", "Category", "Quantity", "Sold In Window")
	for _, entry := range sales {
		addRow(sheet, entry.Name, string(entry.Category),
			strconv.Itoa(entry.Quantity), strconv.Itoa(entry.Sold))
	}

	return workbook, nil
}

func addHeaderRow(sheet *xlsx.Sheet, headers ...string) {
	row := sheet.AddRow()
	for _, header := range headers {
		cell := row.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
	}
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, value := range values {
		row.AddCell().Value = value
	}
}

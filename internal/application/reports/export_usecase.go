// Package reports builds the downloadable spreadsheet snapshot of the shop's
// data, one sheet per collection.
package reports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hamedsh/dokandar-api/internal/domain/repository"
)

// ExportUseCase renders the three collections into an xlsx workbook.
type ExportUseCase struct {
	ledger repository.Ledger
}

// NewExportUseCase builds the use case.
func NewExportUseCase(ledger repository.Ledger) *ExportUseCase {
	return &ExportUseCase{ledger: ledger}
}

// Export returns the workbook bytes: Products, Sales and Debts sheets with a
// header row each, rows in insertion order. Sale rows carry the snapshot
// prices, not the live product's.
func (uc *ExportUseCase) Export() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Products"); err != nil {
		return nil, fmt.Errorf("export workbook: %w", err)
	}
	if err := writeRows(f, "Products", productRows(uc.ledger)); err != nil {
		return nil, err
	}

	extra := []struct {
		name string
		rows [][]any
	}{
		{"Sales", saleRows(uc.ledger)},
		{"Debts", debtRows(uc.ledger)},
	}
	for _, sheet := range extra {
		name, rows := sheet.name, sheet.rows
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("export workbook: %w", err)
		}
		if err := writeRows(f, name, rows); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("export workbook: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("export workbook: %w", err)
		}
	}
	return nil
}

func productRows(ledger repository.Ledger) [][]any {
	rows := [][]any{{"ID", "Name", "Quantity", "Purchase Price", "Sale Price"}}
	for _, p := range ledger.Products() {
		rows = append(rows, []any{p.ID, p.Name, p.Quantity, p.PurchasePrice.String(), p.SalePrice.String()})
	}
	return rows
}

func saleRows(ledger repository.Ledger) [][]any {
	rows := [][]any{{"ID", "Product", "Quantity", "Purchase Price", "Sale Price", "Total", "Date"}}
	for _, s := range ledger.Sales() {
		rows = append(rows, []any{
			s.ID, s.ProductName, s.Quantity,
			s.PurchasePrice.String(), s.SalePrice.String(), s.Total.String(),
			s.Date.Format("2006-01-02 15:04:05"),
		})
	}
	return rows
}

func debtRows(ledger repository.Ledger) [][]any {
	rows := [][]any{{"ID", "First Name", "Last Name", "Items", "Amount", "Contact", "Note"}}
	for _, d := range ledger.Debts() {
		rows = append(rows, []any{
			d.ID, d.FirstName, d.LastName, d.ItemsDescription,
			d.Amount.String(), d.ContactNumber, d.Note,
		})
	}
	return rows
}

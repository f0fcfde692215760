package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/majormofor/money-tracker/internal/models"
)

// exportHeader is the fixed 6-column header of the export surface.
var exportHeader = []string{"Date", "Type", "Category", "Title", "Amount", "Notes"}

// exportRows returns a copy of txs in the export order: date ascending,
// then type, then id. Sorting here keeps the output byte-stable no matter
// how the rows were fetched.
func exportRows(txs []models.Transaction) []models.Transaction {
	rows := make([]models.Transaction, len(txs))
	copy(rows, txs)
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		if rows[i].Type != rows[j].Type {
			return rows[i].Type < rows[j].Type
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}

// collapseNotes flattens notes to a single trimmed line.
func collapseNotes(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}

// WriteCSV writes the windowed transaction set as a flat CSV: one row per
// transaction, amounts with exactly two decimal places, category blank when
// unresolvable. This is the audit/interchange surface.
func WriteCSV(w io.Writer, txs []models.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, tx := range exportRows(txs) {
		row := []string{
			tx.Date.Format("2006-01-02"),
			tx.Type,
			tx.Category.Name,
			tx.Title,
			tx.Amount.StringFixed(2),
			collapseNotes(tx.Notes),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVFilename builds the download name for a window's CSV export.
func CSVFilename(w Window) string {
	return fmt.Sprintf("pl_export_%s_%s.csv", w.From.Format("20060102"), w.To.Format("20060102"))
}

// WriteXLSX writes the same rows as a spreadsheet.
func WriteXLSX(w io.Writer, txs []models.Transaction) error {
	f := excelize.NewFile()
	const sheet = "Transactions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, h := range exportHeader {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, h)
	}

	for idx, tx := range exportRows(txs) {
		row := idx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), tx.Date.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), tx.Type)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), tx.Category.Name)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), tx.Title)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), tx.Amount.StringFixed(2))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), collapseNotes(tx.Notes))
	}

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 10)
	f.SetColWidth(sheet, "C", "C", 15)
	f.SetColWidth(sheet, "D", "D", 25)
	f.SetColWidth(sheet, "E", "E", 12)
	f.SetColWidth(sheet, "F", "F", 30)

	return f.Write(w)
}

// XLSXFilename builds the download name for a window's XLSX export.
func XLSXFilename(w Window) string {
	return fmt.Sprintf("pl_export_%s_%s.xlsx", w.From.Format("20060102"), w.To.Format("20060102"))
}

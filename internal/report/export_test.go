package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majormofor/money-tracker/internal/models"
)

func TestWriteCSV(t *testing.T) {
	// rows handed over newest-first, as the store returns them; the export
	// re-sorts to date ascending
	txs := []models.Transaction{
		tx(t, 3, "2025-10-08", models.TypeIncome, "Salary", "50"),
		tx(t, 2, "2025-10-03", models.TypeExpense, "Food", "30"),
		tx(t, 1, "2025-10-01", models.TypeIncome, "Salary", "100"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, txs))

	want := "Date,Type,Category,Title,Amount,Notes\n" +
		"2025-10-01,Income,Salary,test Salary,100.00,\n" +
		"2025-10-03,Expense,Food,test Food,30.00,\n" +
		"2025-10-08,Income,Salary,test Salary,50.00,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Date,Type,Category,Title,Amount,Notes\n", buf.String())
}

func TestWriteCSVSameDayOrder(t *testing.T) {
	// same date: Expense sorts before Income, then id ascending
	txs := []models.Transaction{
		tx(t, 9, "2025-10-03", models.TypeIncome, "Salary", "10"),
		tx(t, 5, "2025-10-03", models.TypeExpense, "Food", "20"),
		tx(t, 2, "2025-10-03", models.TypeExpense, "Rent", "30"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, txs))

	want := "Date,Type,Category,Title,Amount,Notes\n" +
		"2025-10-03,Expense,Rent,test Rent,30.00,\n" +
		"2025-10-03,Expense,Food,test Food,20.00,\n" +
		"2025-10-03,Income,Salary,test Salary,10.00,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVCollapsesNotes(t *testing.T) {
	row := tx(t, 1, "2025-10-01", models.TypeExpense, "Food", "12.5")
	row.Notes = "line one\nline two\n"

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []models.Transaction{row}))

	want := "Date,Type,Category,Title,Amount,Notes\n" +
		"2025-10-01,Expense,Food,test Food,12.50,line one line two\n"
	assert.Equal(t, want, buf.String())
}

func TestCSVFilename(t *testing.T) {
	w := Window{From: day(t, "2025-10-01"), To: day(t, "2025-10-14")}
	assert.Equal(t, "pl_export_20251001_20251014.csv", CSVFilename(w))
	assert.Equal(t, "pl_export_20251001_20251014.xlsx", XLSXFilename(w))
}

func TestWriteXLSX(t *testing.T) {
	txs := []models.Transaction{
		tx(t, 1, "2025-10-01", models.TypeIncome, "Salary", "100"),
		tx(t, 2, "2025-10-03", models.TypeExpense, "Food", "30"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, txs))
	// zip container magic
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
}

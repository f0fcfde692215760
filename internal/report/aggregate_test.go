package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majormofor/money-tracker/internal/models"
)

func tx(t *testing.T, id uint, date, typ, category, amount string) models.Transaction {
	t.Helper()
	amt, err := decimal.NewFromString(amount)
	require.NoError(t, err)
	return models.Transaction{
		ID:       id,
		Title:    "test " + category,
		Amount:   amt,
		Type:     typ,
		Date:     day(t, date),
		Category: models.Category{Name: category, Type: typ},
	}
}

func TestSumByTypeEmpty(t *testing.T) {
	totals := SumByType(nil)
	assert.True(t, totals.Income.IsZero())
	assert.True(t, totals.Expense.IsZero())
	assert.True(t, totals.Net().IsZero())
}

func TestSumByType(t *testing.T) {
	txs := []models.Transaction{
		tx(t, 1, "2025-10-01", models.TypeIncome, "Salary", "100"),
		tx(t, 2, "2025-10-03", models.TypeExpense, "Food", "30"),
		tx(t, 3, "2025-10-08", models.TypeIncome, "Salary", "50"),
	}
	totals := SumByType(txs)
	assert.Equal(t, "150.00", totals.Income.StringFixed(2))
	assert.Equal(t, "30.00", totals.Expense.StringFixed(2))
	assert.Equal(t, "120.00", totals.Net().StringFixed(2))
}

func TestSumByTypeDecimalExact(t *testing.T) {
	// classic float trap: 0.1 + 0.2 must be exactly 0.3
	txs := []models.Transaction{
		tx(t, 1, "2025-10-01", models.TypeIncome, "A", "0.1"),
		tx(t, 2, "2025-10-01", models.TypeIncome, "A", "0.2"),
	}
	totals := SumByType(txs)
	assert.True(t, totals.Income.Equal(decimal.RequireFromString("0.3")))
}

func TestSumByCategory(t *testing.T) {
	txs := []models.Transaction{
		tx(t, 1, "2025-10-01", models.TypeExpense, "Rent", "800"),
		tx(t, 2, "2025-10-02", models.TypeExpense, "Food", "30"),
		tx(t, 3, "2025-10-03", models.TypeExpense, "Food", "20"),
		tx(t, 4, "2025-10-04", models.TypeIncome, "Salary", "2000"),
	}
	rows := SumByCategory(txs, models.TypeExpense)
	require.Len(t, rows, 2)
	assert.Equal(t, "Rent", rows[0].Category)
	assert.Equal(t, "800.00", rows[0].Total.StringFixed(2))
	assert.Equal(t, "Food", rows[1].Category)
	assert.Equal(t, "50.00", rows[1].Total.StringFixed(2))
}

func TestSumByCategoryTieOrder(t *testing.T) {
	// equal totals order by name so output is stable
	txs := []models.Transaction{
		tx(t, 1, "2025-10-01", models.TypeExpense, "Zoo", "10"),
		tx(t, 2, "2025-10-01", models.TypeExpense, "Art", "10"),
	}
	rows := SumByCategory(txs, models.TypeExpense)
	require.Len(t, rows, 2)
	assert.Equal(t, "Art", rows[0].Category)
	assert.Equal(t, "Zoo", rows[1].Category)
}

func TestSumByCategoryUncategorised(t *testing.T) {
	txs := []models.Transaction{
		tx(t, 1, "2025-10-01", models.TypeExpense, "", "15"),
	}
	rows := SumByCategory(txs, models.TypeExpense)
	require.Len(t, rows, 1)
	assert.Equal(t, Uncategorised, rows[0].Category)
}

func TestSumByPeriod(t *testing.T) {
	txs := []models.Transaction{
		tx(t, 1, "2025-10-01", models.TypeIncome, "Salary", "100"),
		tx(t, 2, "2025-10-03", models.TypeExpense, "Food", "30"),
		tx(t, 3, "2025-10-08", models.TypeIncome, "Salary", "50"),
	}
	buckets := SumByPeriod(txs, BucketWeekly)
	require.Len(t, buckets, 2)

	week1 := buckets[day(t, "2025-09-29")]
	assert.Equal(t, "100.00", week1.Income.StringFixed(2))
	assert.Equal(t, "30.00", week1.Expense.StringFixed(2))

	week2 := buckets[day(t, "2025-10-06")]
	assert.Equal(t, "50.00", week2.Income.StringFixed(2))
	assert.True(t, week2.Expense.IsZero())
}

func TestBuildSeriesDensifies(t *testing.T) {
	// only the middle week has data; the gaps must read as zero
	txs := []models.Transaction{
		tx(t, 1, "2025-10-08", models.TypeIncome, "Salary", "50"),
	}
	w := Window{From: day(t, "2025-10-01"), To: day(t, "2025-10-19")}
	s := BuildSeries(txs, w, BucketWeekly)

	assert.Equal(t, []string{"2025-W40", "2025-W41", "2025-W42"}, s.Labels)
	assert.Equal(t, []float64{0, 50, 0}, s.Income)
	assert.Equal(t, []float64{0, 0, 0}, s.Expense)
	assert.Equal(t, []float64{0, 50, 0}, s.Net)
}

func TestBuildSeriesEmptySet(t *testing.T) {
	// an empty set still yields one zero point per anchor, never an empty series
	w := Window{From: day(t, "2025-10-01"), To: day(t, "2025-10-14")}
	s := BuildSeries(nil, w, BucketWeekly)

	require.Len(t, s.Labels, 3)
	assert.Len(t, s.Income, 3)
	assert.Len(t, s.Expense, 3)
	assert.Len(t, s.Net, 3)
	for i := range s.Labels {
		assert.Zero(t, s.Income[i])
		assert.Zero(t, s.Expense[i])
		assert.Zero(t, s.Net[i])
	}
}

func TestBuildSeriesMonthly(t *testing.T) {
	txs := []models.Transaction{
		tx(t, 1, "2024-12-15", models.TypeExpense, "Gifts", "120"),
		tx(t, 2, "2025-01-10", models.TypeIncome, "Salary", "2000"),
	}
	w := Window{From: day(t, "2024-12-01"), To: day(t, "2025-01-31")}
	s := BuildSeries(txs, w, BucketMonthly)

	assert.Equal(t, []string{"2024-12", "2025-01"}, s.Labels)
	assert.Equal(t, []float64{0, 2000}, s.Income)
	assert.Equal(t, []float64{120, 0}, s.Expense)
	assert.Equal(t, []float64{-120, 2000}, s.Net)
}

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majormofor/money-tracker/internal/models"
)

// scenarioTxs is the worked example used across the builder tests: two
// income rows ($100 on Oct 1, $50 on Oct 8) and one expense ($30 on Oct 3).
func scenarioTxs(t *testing.T) []models.Transaction {
	t.Helper()
	return []models.Transaction{
		tx(t, 1, "2025-10-01", models.TypeIncome, "Salary", "100"),
		tx(t, 2, "2025-10-03", models.TypeExpense, "Food", "30"),
		tx(t, 3, "2025-10-08", models.TypeIncome, "Salary", "50"),
	}
}

func TestBuildPL(t *testing.T) {
	w := Window{From: day(t, "2025-10-01"), To: day(t, "2025-10-14")}
	pl := BuildPL(scenarioTxs(t), w)

	assert.Equal(t, "150.00", pl.Totals.Income.StringFixed(2))
	assert.Equal(t, "30.00", pl.Totals.Expense.StringFixed(2))
	assert.Equal(t, "120.00", pl.Totals.Net().StringFixed(2))

	require.Len(t, pl.IncomeByCategory, 1)
	assert.Equal(t, "Salary", pl.IncomeByCategory[0].Category)
	require.Len(t, pl.ExpenseByCategory, 1)
	assert.Equal(t, "Food", pl.ExpenseByCategory[0].Category)
}

func TestBuildPLEmpty(t *testing.T) {
	w := Window{From: day(t, "2025-10-01"), To: day(t, "2025-10-14")}
	pl := BuildPL(nil, w)

	assert.True(t, pl.Totals.Income.IsZero())
	assert.True(t, pl.Totals.Expense.IsZero())
	assert.Empty(t, pl.IncomeByCategory)
	assert.Empty(t, pl.ExpenseByCategory)
}

func TestBuildDashboardScenario(t *testing.T) {
	w := Window{From: day(t, "2025-10-01"), To: day(t, "2025-10-12")}
	d := BuildDashboard(scenarioTxs(t), w, BucketWeekly)

	assert.Equal(t, "150.00", d.Totals.Income.StringFixed(2))
	assert.Equal(t, "30.00", d.Totals.Expense.StringFixed(2))
	assert.Equal(t, "120.00", d.Totals.Net().StringFixed(2))

	assert.Equal(t, []string{"2025-W40", "2025-W41"}, d.Series.Labels)
	assert.Equal(t, []float64{100, 50}, d.Series.Income)
	assert.Equal(t, []float64{30, 0}, d.Series.Expense)
	assert.Equal(t, []float64{70, 50}, d.Series.Net)

	require.Len(t, d.ExpenseByCategory, 1)
	assert.Equal(t, "Food", d.ExpenseByCategory[0].Category)
}

// Summing the dashboard series over the window must land on the same
// totals the P&L report computes for that window.
func TestSeriesRoundTripsToTotals(t *testing.T) {
	w := Window{From: day(t, "2025-10-01"), To: day(t, "2025-10-14")}
	txs := scenarioTxs(t)

	pl := BuildPL(txs, w)
	d := BuildDashboard(txs, w, BucketWeekly)

	var income, expense float64
	for i := range d.Series.Labels {
		income += d.Series.Income[i]
		expense += d.Series.Expense[i]
	}

	wantIncome, _ := pl.Totals.Income.Float64()
	wantExpense, _ := pl.Totals.Expense.Float64()
	assert.InDelta(t, wantIncome, income, 1e-9)
	assert.InDelta(t, wantExpense, expense, 1e-9)
}

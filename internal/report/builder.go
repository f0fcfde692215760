package report

import "github.com/majormofor/money-tracker/internal/models"

// PLReport mirrors the profit-and-loss page: windowed totals plus the two
// ordered category breakdowns.
type PLReport struct {
	Window            Window
	Totals            Totals
	IncomeByCategory  []CategoryTotal
	ExpenseByCategory []CategoryTotal
}

// BuildPL assembles the P&L report for a windowed, user-scoped set.
// An empty set yields all-zero totals and empty breakdowns.
func BuildPL(txs []models.Transaction, w Window) PLReport {
	return PLReport{
		Window:            w,
		Totals:            SumByType(txs),
		IncomeByCategory:  SumByCategory(txs, models.TypeIncome),
		ExpenseByCategory: SumByCategory(txs, models.TypeExpense),
	}
}

// Dashboard carries KPI totals, the three aligned chart series and the
// expense breakdown for the donut.
type Dashboard struct {
	Window            Window
	Bucket            Bucket
	Totals            Totals
	Series            Series
	ExpenseByCategory []CategoryTotal
}

// BuildDashboard assembles the dashboard products for a windowed set.
func BuildDashboard(txs []models.Transaction, w Window, b Bucket) Dashboard {
	return Dashboard{
		Window:            w,
		Bucket:            b,
		Totals:            SumByType(txs),
		Series:            BuildSeries(txs, w, b),
		ExpenseByCategory: SumByCategory(txs, models.TypeExpense),
	}
}

package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/majormofor/money-tracker/internal/models"
)

// Uncategorised labels rows whose category name cannot be resolved.
const Uncategorised = "Uncategorised"

// Totals holds decimal sums per transaction type. Missing groups are zero,
// not absent; sums stay exact until the final presentation conversion.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net is income minus expense.
func (t Totals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// SumByType folds a transaction set into income and expense totals.
func SumByType(txs []models.Transaction) Totals {
	var t Totals
	for i := range txs {
		if txs[i].Type == models.TypeIncome {
			t.Income = t.Income.Add(txs[i].Amount)
		} else {
			t.Expense = t.Expense.Add(txs[i].Amount)
		}
	}
	return t
}

// CategoryTotal is one row of a category breakdown.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// SumByCategory groups amounts of one transaction type by category name,
// ordered by descending total (ties broken by name so output is stable).
// Rows without a resolvable category name fall under Uncategorised.
func SumByCategory(txs []models.Transaction, txType string) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	for i := range txs {
		tx := &txs[i]
		if tx.Type != txType {
			continue
		}
		name := tx.Category.Name
		if name == "" {
			name = Uncategorised
		}
		sums[name] = sums[name].Add(tx.Amount)
	}

	out := make([]CategoryTotal, 0, len(sums))
	for name, total := range sums {
		out = append(out, CategoryTotal{Category: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// SumByPeriod accumulates separate income and expense sums per bucket
// anchor. Only anchors that actually have transactions appear; Series
// merges the result against the full gap-free anchor sequence.
func SumByPeriod(txs []models.Transaction, b Bucket) map[time.Time]Totals {
	buckets := make(map[time.Time]Totals)
	for i := range txs {
		tx := &txs[i]
		anchor := b.Anchor(tx.Date)
		t := buckets[anchor]
		if tx.Type == models.TypeIncome {
			t.Income = t.Income.Add(tx.Amount)
		} else {
			t.Expense = t.Expense.Add(tx.Amount)
		}
		buckets[anchor] = t
	}
	return buckets
}

// Series is a densified, chart-ready timeline: one aligned point per
// anchor in the window, zero where no transaction fell in that bucket.
// Values are converted to float64 here, at the presentation boundary.
type Series struct {
	Labels  []string  `json:"labels"`
	Income  []float64 `json:"income"`
	Expense []float64 `json:"expense"`
	Net     []float64 `json:"net"`
}

// BuildSeries merges per-anchor sums with the full anchor sequence for the
// window. An empty transaction set yields a series of zeros across every
// anchor in range, never an empty series.
func BuildSeries(txs []models.Transaction, w Window, b Bucket) Series {
	perAnchor := SumByPeriod(txs, b)
	anchors := b.Periods(w.From, w.To)

	s := Series{
		Labels:  make([]string, len(anchors)),
		Income:  make([]float64, len(anchors)),
		Expense: make([]float64, len(anchors)),
		Net:     make([]float64, len(anchors)),
	}
	for i, anchor := range anchors {
		t := perAnchor[anchor] // zero Totals when the bucket is empty
		s.Labels[i] = b.Label(anchor)
		s.Income[i], _ = t.Income.Float64()
		s.Expense[i], _ = t.Expense.Float64()
		s.Net[i], _ = t.Net().Float64()
	}
	return s
}

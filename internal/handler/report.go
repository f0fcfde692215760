package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/majormofor/money-tracker/internal/report"
	"github.com/majormofor/money-tracker/internal/store"
	"github.com/majormofor/money-tracker/internal/util"
)

// ReportHandler serves the P&L report, its exports and the dashboard.
type ReportHandler struct {
	Store *store.Store
}

func NewReportHandler(st *store.Store) *ReportHandler {
	return &ReportHandler{Store: st}
}

// breakdownJSON renders a category breakdown with string amounts.
func breakdownJSON(rows []report.CategoryTotal) []gin.H {
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"category": row.Category,
			"total":    row.Total.StringFixed(2),
		})
	}
	return out
}

// ProfitAndLoss returns windowed totals and the category breakdowns.
// Default window: the most recent 30 days.
func (h *ReportHandler) ProfitAndLoss(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	w := report.ResolveWindow(c.Query("date_from"), c.Query("date_to"), report.DefaultReportDays)
	txs, err := h.Store.Transactions(user.ID, store.TransactionFilter{
		DateFrom: &w.From,
		DateTo:   &w.To,
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load transactions")
		return
	}

	pl := report.BuildPL(txs, w)

	util.Success(c, util.Response{
		"currency":            h.Store.CurrencySymbol(user.ID),
		"date_from":           w.From.Format("2006-01-02"),
		"date_to":             w.To.Format("2006-01-02"),
		"income_total":        pl.Totals.Income.StringFixed(2),
		"expense_total":       pl.Totals.Expense.StringFixed(2),
		"net_total":           pl.Totals.Net().StringFixed(2),
		"income_by_category":  breakdownJSON(pl.IncomeByCategory),
		"expense_by_category": breakdownJSON(pl.ExpenseByCategory),
	})
}

// ExportCSV streams the windowed transaction set as CSV.
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	w := report.ResolveWindow(c.Query("date_from"), c.Query("date_to"), report.DefaultReportDays)
	txs, err := h.Store.Transactions(user.ID, store.TransactionFilter{
		DateFrom: &w.From,
		DateTo:   &w.To,
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load transactions")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.CSVFilename(w)))
	if err := report.WriteCSV(c.Writer, txs); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}

// ExportXLSX streams the same windowed set as a spreadsheet.
func (h *ReportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	w := report.ResolveWindow(c.Query("date_from"), c.Query("date_to"), report.DefaultReportDays)
	txs, err := h.Store.Transactions(user.ID, store.TransactionFilter{
		DateFrom: &w.From,
		DateTo:   &w.To,
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load transactions")
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.XLSXFilename(w)))
	if err := report.WriteXLSX(c.Writer, txs); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}

// Dashboard returns KPI totals, the three aligned densified series and the
// expense donut data. Default window: the most recent 90 days, weekly.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	w := report.ResolveWindow(c.Query("date_from"), c.Query("date_to"), report.DefaultDashboardDays)
	bucket := report.ParseBucket(c.Query("bucket"))

	txs, err := h.Store.Transactions(user.ID, store.TransactionFilter{
		DateFrom: &w.From,
		DateTo:   &w.To,
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load transactions")
		return
	}

	d := report.BuildDashboard(txs, w, bucket)

	pieLabels := make([]string, 0, len(d.ExpenseByCategory))
	pieValues := make([]float64, 0, len(d.ExpenseByCategory))
	for _, row := range d.ExpenseByCategory {
		pieLabels = append(pieLabels, row.Category)
		value, _ := row.Total.Float64()
		pieValues = append(pieValues, value)
	}

	util.Success(c, util.Response{
		"currency":  h.Store.CurrencySymbol(user.ID),
		"date_from": w.From.Format("2006-01-02"),
		"date_to":   w.To.Format("2006-01-02"),
		"bucket":    string(bucket),

		"kpi_income":  d.Totals.Income.StringFixed(2),
		"kpi_expense": d.Totals.Expense.StringFixed(2),
		"kpi_net":     d.Totals.Net().StringFixed(2),

		"labels":  d.Series.Labels,
		"income":  d.Series.Income,
		"expense": d.Series.Expense,
		"net":     d.Series.Net,

		"pie_labels": pieLabels,
		"pie_values": pieValues,
	})
}

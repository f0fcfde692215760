package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/majormofor/money-tracker/internal/models"
	"github.com/majormofor/money-tracker/internal/report"
	"github.com/majormofor/money-tracker/internal/store"
	"github.com/majormofor/money-tracker/internal/util"
)

// TransactionHandler serves transaction CRUD and the filtered list.
type TransactionHandler struct {
	Store    *store.Store
	PageSize int
}

func NewTransactionHandler(st *store.Store, pageSize int) *TransactionHandler {
	if pageSize <= 0 {
		pageSize = 50
	}
	return &TransactionHandler{Store: st, PageSize: pageSize}
}

type transactionReq struct {
	Title       string `json:"title" binding:"required,max=100"`
	Amount      string `json:"amount" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=Income Expense"`
	CategoryID  uint   `json:"category_id"`
	NewCategory string `json:"new_category" binding:"max=50"`
	Date        string `json:"date"` // YYYY-MM-DD, defaults to today
	Notes       string `json:"notes"`
}

type transactionResp struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Amount     string `json:"amount"`
	Type       string `json:"type"`
	CategoryID uint   `json:"category_id"`
	Category   string `json:"category"`
	Date       string `json:"date"`
	Notes      string `json:"notes"`
}

func toTransactionResp(tx *models.Transaction) transactionResp {
	return transactionResp{
		ID:         tx.ID,
		Title:      tx.Title,
		Amount:     tx.Amount.StringFixed(2),
		Type:       tx.Type,
		CategoryID: tx.CategoryID,
		Category:   tx.Category.Name,
		Date:       tx.Date.Format("2006-01-02"),
		Notes:      tx.Notes,
	}
}

// parseAmount accepts a positive decimal with at most two fractional digits.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, errors.New("enter a valid amount")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errors.New("amount must be greater than zero")
	}
	if amount.Exponent() < -2 {
		return decimal.Zero, errors.New("amount can have at most two decimal places")
	}
	return amount, nil
}

// bindTransaction validates the request and resolves the category choice
// (existing id or new name) into a concrete category.
func (h *TransactionHandler) bindTransaction(c *gin.Context, userID uint) (*models.Transaction, bool) {
	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return nil, false
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return nil, false
	}

	date := report.Today()
	if req.Date != "" {
		parsed, ok := report.ParseDate(req.Date)
		if !ok {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date must be YYYY-MM-DD")
			return nil, false
		}
		date = parsed
	}

	cat, err := h.Store.ResolveCategory(userID, req.Type, store.CategoryRef{
		ID:      req.CategoryID,
		NewName: req.NewCategory,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoCategory):
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "pick a category or type a new one")
		case errors.Is(err, store.ErrAmbiguousCategory):
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam,
				"choose an existing category or a new name, not both")
		case errors.Is(err, store.ErrCategoryNotFound):
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "category not found")
		case errors.Is(err, store.ErrCategoryTypeMismatch):
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam,
				"category type must match the transaction type")
		default:
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to resolve category")
		}
		return nil, false
	}

	return &models.Transaction{
		UserID:     userID,
		Title:      strings.TrimSpace(req.Title),
		Amount:     amount,
		Type:       req.Type,
		CategoryID: cat.ID,
		Category:   *cat,
		Date:       date,
		Notes:      req.Notes,
	}, true
}

// Create records a new transaction.
func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	tx, ok := h.bindTransaction(c, user.ID)
	if !ok {
		return
	}

	if err := h.Store.CreateTransaction(tx); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save transaction")
		return
	}

	util.Success(c, util.Response{
		"transaction": toTransactionResp(tx),
	})
}

// Update edits one of the user's transactions.
func (h *TransactionHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid transaction id")
		return
	}

	existing, err := h.Store.TransactionByID(user.ID, uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "transaction not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load transaction")
		}
		return
	}

	tx, ok := h.bindTransaction(c, user.ID)
	if !ok {
		return
	}

	existing.Title = tx.Title
	existing.Amount = tx.Amount
	existing.Type = tx.Type
	existing.CategoryID = tx.CategoryID
	existing.Category = tx.Category
	existing.Date = tx.Date
	existing.Notes = tx.Notes

	if err := h.Store.SaveTransaction(existing); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save transaction")
		return
	}

	util.Success(c, util.Response{
		"transaction": toTransactionResp(existing),
	})
}

// Delete removes one of the user's transactions.
func (h *TransactionHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid transaction id")
		return
	}

	if err := h.Store.DeleteTransaction(user.ID, uint(id)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "transaction not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete transaction")
		}
		return
	}

	util.Success(c, util.Response{
		"message": "transaction deleted",
	})
}

// orderFor maps the sort query value to a SQL order clause.
func orderFor(sortKey string) string {
	switch sortKey {
	case "date_asc":
		return "date ASC, id ASC"
	case "amount_desc":
		return "amount DESC, id DESC"
	case "amount_asc":
		return "amount ASC, id ASC"
	default: // date_desc
		return "date DESC, id DESC"
	}
}

// List returns a filtered page of transactions together with KPI totals
// of the whole filtered set and the echoed filters.
func (h *TransactionHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(h.PageSize)))
	if size <= 0 || size > 100 {
		size = h.PageSize
	}

	filters := gin.H{
		"type":      c.DefaultQuery("type", "Both"),
		"category":  c.Query("category"),
		"date_from": c.Query("date_from"),
		"date_to":   c.Query("date_to"),
		"q":         c.Query("q"),
	}

	f := store.TransactionFilter{
		Type:   c.Query("type"),
		Search: strings.TrimSpace(c.Query("q")),
	}
	if catID, err := strconv.Atoi(c.Query("category")); err == nil && catID > 0 {
		f.CategoryID = uint(catID)
	}
	// malformed dates read as absent, never as errors
	if from, ok := report.ParseDate(c.Query("date_from")); ok {
		f.DateFrom = &from
	}
	if to, ok := report.ParseDate(c.Query("date_to")); ok {
		f.DateTo = &to
	}

	sortKey := c.DefaultQuery("sort", "date_desc")
	rows, total, err := h.Store.TransactionPage(user.ID, f, orderFor(sortKey), size, (page-1)*size)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load transactions")
		return
	}

	items := make([]transactionResp, 0, len(rows))
	for i := range rows {
		items = append(items, toTransactionResp(&rows[i]))
	}

	// KPI totals over the whole filtered set, not just this page
	all, err := h.Store.Transactions(user.ID, f)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to total transactions")
		return
	}
	totals := report.SumByType(all)

	util.Success(c, util.Response{
		"items":    items,
		"total":    total,
		"page":     page,
		"size":     size,
		"filters":  filters,
		"currency": h.Store.CurrencySymbol(user.ID),
		"summary": gin.H{
			"income":  totals.Income.StringFixed(2),
			"expense": totals.Expense.StringFixed(2),
			"net":     totals.Net().StringFixed(2),
		},
	})
}

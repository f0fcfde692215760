package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/majormofor/money-tracker/internal/models"
)

// TransactionFilter scopes a user's transaction queries. The zero value
// matches everything the user owns.
type TransactionFilter struct {
	Type       string // Income or Expense; anything else means both
	CategoryID uint
	DateFrom   *time.Time // inclusive
	DateTo     *time.Time // inclusive
	Search     string     // title or notes contains
}

func (s *Store) scopeTransactions(userID uint, f TransactionFilter) *gorm.DB {
	q := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	if f.Type == models.TypeIncome || f.Type == models.TypeExpense {
		q = q.Where("type = ?", f.Type)
	}
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.DateFrom != nil {
		q = q.Where("date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("date <= ?", *f.DateTo)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR notes LIKE ?", like, like)
	}
	return q
}

// Transactions returns every matching row with its category preloaded,
// newest first. This feeds the aggregation and export paths, which do
// their own ordering.
func (s *Store) Transactions(userID uint, f TransactionFilter) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.scopeTransactions(userID, f).
		Preload("Category").
		Order("date DESC, id DESC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// TransactionPage returns one page of matching rows in the given order,
// plus the total match count.
func (s *Store) TransactionPage(userID uint, f TransactionFilter, order string, limit, offset int) ([]models.Transaction, int64, error) {
	base := s.scopeTransactions(userID, f)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txs []models.Transaction
	err := base.Session(&gorm.Session{}).
		Preload("Category").
		Order(order).
		Limit(limit).
		Offset(offset).
		Find(&txs).Error
	if err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}

// TransactionByID fetches one of the user's transactions.
func (s *Store) TransactionByID(userID, id uint) (*models.Transaction, error) {
	var tx models.Transaction
	err := s.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&tx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// CreateTransaction persists a new row. Invariant checks (ownership, type
// match, positive amount) happen before this is called.
func (s *Store) CreateTransaction(tx *models.Transaction) error {
	return s.db.Create(tx).Error
}

// SaveTransaction writes back an edited row.
func (s *Store) SaveTransaction(tx *models.Transaction) error {
	return s.db.Save(tx).Error
}

// DeleteTransaction removes one of the user's transactions.
func (s *Store) DeleteTransaction(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

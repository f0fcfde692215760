package models

import "time"

// Transaction types used by both Category and Transaction.
const (
	TypeIncome  = "Income"
	TypeExpense = "Expense"
)

// Category represents income/expense category.
// (user, type, name) is unique case-insensitively; enforced at write time.
type Category struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Name      string    `gorm:"size:50;not null"`
	Type      string    `gorm:"size:7;index;not null"` // Income / Expense
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

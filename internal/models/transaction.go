package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single money event. The amount is always positive;
// the sign is carried by Type, never by the value.
type Transaction struct {
	ID         uint            `gorm:"primaryKey"`
	UserID     uint            `gorm:"index;not null"`
	Title      string          `gorm:"size:100;not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Type       string          `gorm:"size:7;index;not null"` // Income / Expense
	CategoryID uint            `gorm:"index;not null"`
	Date       time.Time       `gorm:"index;not null"` // calendar date, midnight UTC
	Notes      string          `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User     User     `gorm:"constraint:OnDelete:CASCADE"`
	Category Category `gorm:"constraint:OnDelete:RESTRICT"`
}

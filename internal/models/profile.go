package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile stores per-user display preferences. Exactly one row per user;
// created lazily on first access when missing.
type Profile struct {
	ID             uint            `gorm:"primaryKey"`
	UserID         uint            `gorm:"uniqueIndex;not null"`
	Currency       string          `gorm:"size:3;not null;default:GBP"` // 3-letter code, e.g. GBP
	InitialBalance decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

package store

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/majormofor/money-tracker/internal/currency"
	"github.com/majormofor/money-tracker/internal/models"
)

// GetOrCreateProfile returns the user's profile, creating the default row
// (GBP, zero balance) on first access. The lookup-or-initialize is
// idempotent, so every access point may call it.
func (s *Store) GetOrCreateProfile(userID uint) (*models.Profile, error) {
	var p models.Profile
	err := s.db.Where("user_id = ?", userID).First(&p).Error
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p = models.Profile{
		UserID:         userID,
		Currency:       currency.DefaultCode,
		InitialBalance: decimal.Zero,
	}
	if err := s.db.Where("user_id = ?", userID).FirstOrCreate(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile stores a new currency code and initial balance.
func (s *Store) UpdateProfile(userID uint, code string, initialBalance decimal.Decimal) (*models.Profile, error) {
	p, err := s.GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}
	p.Currency = code
	p.InitialBalance = initialBalance
	if err := s.db.Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// CurrencySymbol resolves the display symbol for a user. It never fails:
// a missing profile is lazily created with the default currency, and any
// lookup problem degrades to the default symbol.
func (s *Store) CurrencySymbol(userID uint) string {
	if userID == 0 {
		return currency.DefaultSymbol
	}
	p, err := s.GetOrCreateProfile(userID)
	if err != nil {
		return currency.DefaultSymbol
	}
	return currency.Symbol(p.Currency)
}

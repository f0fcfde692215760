package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/majormofor/money-tracker/internal/models"
)

// CreateUser inserts a user after checking the username is free
// (case-insensitively).
func (s *Store) CreateUser(u *models.User) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("LOWER(username) = LOWER(?)", u.Username).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateUser
		}
		return tx.Create(u).Error
	})
}

// UserByUsername looks a user up case-insensitively.
func (s *Store) UserByUsername(username string) (*models.User, error) {
	var u models.User
	err := s.db.Where("LOWER(username) = LOWER(?)", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UserByID fetches a user by primary key.
func (s *Store) UserByID(id uint) (*models.User, error) {
	var u models.User
	err := s.db.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdatePassword stores a new bcrypt hash for the user.
func (s *Store) UpdatePassword(userID uint, hash string) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("password_hash", hash).Error
}

package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/majormofor/money-tracker/internal/models"
)

// Categories lists a user's categories, optionally restricted to one type,
// ordered by type then name.
func (s *Store) Categories(userID uint, txType string) ([]models.Category, error) {
	q := s.db.Where("user_id = ?", userID)
	if txType == models.TypeIncome || txType == models.TypeExpense {
		q = q.Where("type = ?", txType)
	}
	var cats []models.Category
	if err := q.Order("type, name").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

// CategoryByID fetches one of the user's categories.
func (s *Store) CategoryByID(userID, id uint) (*models.Category, error) {
	var cat models.Category
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&cat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// duplicateCategory reports whether another category of the same user and
// type already carries the case-folded name.
func duplicateCategory(tx *gorm.DB, userID uint, name, txType string, excludeID uint) (bool, error) {
	q := tx.Model(&models.Category{}).
		Where("user_id = ? AND type = ? AND LOWER(name) = LOWER(?)", userID, txType, name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateCategory inserts a category after normalizing the name and
// enforcing the case-insensitive (user, type, name) uniqueness rule.
func (s *Store) CreateCategory(userID uint, name, txType string) (*models.Category, error) {
	name = NormalizeName(name)
	cat := &models.Category{UserID: userID, Name: name, Type: txType}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		dup, err := duplicateCategory(tx, userID, name, txType, 0)
		if err != nil {
			return err
		}
		if dup {
			return ErrDuplicateCategory
		}
		return tx.Create(cat).Error
	})
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// UpdateCategory renames a category under the same uniqueness rule.
// The type cannot change while transactions reference the category, or
// those rows would silently violate the type-match invariant.
func (s *Store) UpdateCategory(userID, id uint, name, txType string) (*models.Category, error) {
	name = NormalizeName(name)
	var cat models.Category
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&cat).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		if err != nil {
			return err
		}

		if cat.Type != txType {
			var refs int64
			if err := tx.Model(&models.Transaction{}).
				Where("category_id = ?", id).Count(&refs).Error; err != nil {
				return err
			}
			if refs > 0 {
				return ErrCategoryInUse
			}
		}

		dup, err := duplicateCategory(tx, userID, name, txType, id)
		if err != nil {
			return err
		}
		if dup {
			return ErrDuplicateCategory
		}

		cat.Name = name
		cat.Type = txType
		return tx.Save(&cat).Error
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory removes a category unless any transaction still
// references it; a referenced category is left untouched.
func (s *Store) DeleteCategory(userID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var cat models.Category
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&cat).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		if err != nil {
			return err
		}

		var refs int64
		if err := tx.Model(&models.Transaction{}).
			Where("category_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrCategoryInUse
		}
		return tx.Delete(&cat).Error
	})
}

// CategoryRef is the tagged choice carried by the transaction write path:
// either an existing category id or a new category name, never both.
type CategoryRef struct {
	ID      uint
	NewName string
}

// ResolveCategory turns a CategoryRef into a concrete category owned by
// userID and matching txType. A new name reuses an existing category of
// the same type case-insensitively before creating one.
func (s *Store) ResolveCategory(userID uint, txType string, ref CategoryRef) (*models.Category, error) {
	name := NormalizeName(ref.NewName)
	switch {
	case ref.ID != 0 && name != "":
		return nil, ErrAmbiguousCategory
	case ref.ID == 0 && name == "":
		return nil, ErrNoCategory
	}

	if ref.ID != 0 {
		cat, err := s.CategoryByID(userID, ref.ID)
		if err != nil {
			return nil, err
		}
		if cat.Type != txType {
			return nil, ErrCategoryTypeMismatch
		}
		return cat, nil
	}

	var cat models.Category
	err := s.db.Where("user_id = ? AND type = ? AND LOWER(name) = LOWER(?)", userID, txType, name).
		First(&cat).Error
	if err == nil {
		return &cat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created, err := s.CreateCategory(userID, name, txType)
	if errors.Is(err, ErrDuplicateCategory) {
		// lost a race with a concurrent insert; reuse the winner
		err = s.db.Where("user_id = ? AND type = ? AND LOWER(name) = LOWER(?)", userID, txType, name).
			First(&cat).Error
		if err != nil {
			return nil, err
		}
		return &cat, nil
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}

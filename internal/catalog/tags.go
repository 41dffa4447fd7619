package catalog

import (
	"github.com/atelier-dev/atelier/internal/models"
	"gorm.io/gorm"
)

// ListCategories returns the user's categories ordered by name, descending.
// With assignedOnly set, only categories referenced by at least one painting
// are returned. The IN-subquery on the join table keeps each category unique
// even when several paintings reference it.
func ListCategories(tx *gorm.DB, userID uint, assignedOnly bool) ([]models.Category, error) {
	q := tx.Scopes(Owned(userID))

	if assignedOnly {
		q = q.Where("id IN (?)", tx.Table("painting_categories").Distinct("category_id"))
	}

	categories := []models.Category{}

	if err := q.Order("name DESC").Find(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}

// ListSupplies mirrors ListCategories for supplies.
func ListSupplies(tx *gorm.DB, userID uint, assignedOnly bool) ([]models.Supply, error) {
	q := tx.Scopes(Owned(userID))

	if assignedOnly {
		q = q.Where("id IN (?)", tx.Table("painting_supplies").Distinct("supply_id"))
	}

	supplies := []models.Supply{}

	if err := q.Order("name DESC").Find(&supplies).Error; err != nil {
		return nil, err
	}

	return supplies, nil
}

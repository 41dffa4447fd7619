package catalog

import (
	"github.com/atelier-dev/atelier/internal/models"
	"gorm.io/gorm"
)

// PaintingFilter narrows a painting listing to those tagged with any of the
// given category ids and, independently, any of the given supply ids. An
// empty list imposes no constraint on that axis.
type PaintingFilter struct {
	CategoryIDs []uint
	SupplyIDs   []uint
}

func ListPaintings(tx *gorm.DB, userID uint, filter PaintingFilter) ([]models.Painting, error) {
	q := tx.Scopes(Owned(userID))

	if len(filter.CategoryIDs) > 0 {
		q = q.Where("id IN (?)", tx.Table("painting_categories").
			Distinct("painting_id").
			Where("category_id IN ?", filter.CategoryIDs))
	}

	if len(filter.SupplyIDs) > 0 {
		q = q.Where("id IN (?)", tx.Table("painting_supplies").
			Distinct("painting_id").
			Where("supply_id IN ?", filter.SupplyIDs))
	}

	paintings := []models.Painting{}

	if err := q.Preload("Categories").Preload("Supplies").Order("id DESC").Find(&paintings).Error; err != nil {
		return nil, err
	}

	return paintings, nil
}

func GetPainting(tx *gorm.DB, userID, id uint) (*models.Painting, error) {
	var painting models.Painting

	err := tx.Scopes(Owned(userID)).
		Preload("Categories").
		Preload("Supplies").
		Where("id = ?", id).
		First(&painting).Error

	if err != nil {
		return nil, err
	}

	return &painting, nil
}

// ReplaceCategories swaps the painting's category set wholesale. An empty
// set clears the association.
func ReplaceCategories(tx *gorm.DB, painting *models.Painting, categories []models.Category) error {
	if len(categories) == 0 {
		return tx.Model(painting).Association("Categories").Clear()
	}

	return tx.Model(painting).Association("Categories").Replace(&categories)
}

// ReplaceSupplies mirrors ReplaceCategories for supplies.
func ReplaceSupplies(tx *gorm.DB, painting *models.Painting, supplies []models.Supply) error {
	if len(supplies) == 0 {
		return tx.Model(painting).Association("Supplies").Clear()
	}

	return tx.Model(painting).Association("Supplies").Replace(&supplies)
}

// DeletePainting removes an owned painting and its tag associations. The
// referenced categories and supplies themselves are untouched.
func DeletePainting(tx *gorm.DB, userID, id uint) error {
	painting, err := FirstOwned[models.Painting](tx, userID, id)

	if err != nil {
		return err
	}

	if err := tx.Model(painting).Association("Categories").Clear(); err != nil {
		return err
	}

	if err := tx.Model(painting).Association("Supplies").Clear(); err != nil {
		return err
	}

	return tx.Delete(painting).Error
}

package catalog

import (
	"errors"

	"gorm.io/gorm"
)

// ErrUnknownTag is returned when a payload references a category or supply
// id that does not exist for the requesting user.
var ErrUnknownTag = errors.New("referenced id does not exist")

// Owned restricts a query to rows belonging to the given user. Combined with
// a primary-key lookup it doubles as the existence check, so another user's
// rows surface as not found rather than forbidden.
func Owned(userID uint) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("user_id = ?", userID)
	}
}

// FirstOwned fetches a single entity by id, scoped to its owner. A miss is
// gorm.ErrRecordNotFound regardless of whether the row exists for someone
// else.
func FirstOwned[T any](tx *gorm.DB, userID, id uint) (*T, error) {
	var entity T

	if err := tx.Scopes(Owned(userID)).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, err
	}

	return &entity, nil
}

// TagsByIDs resolves a set of category or supply ids to rows owned by the
// user. Every id must resolve; any unknown or foreign id fails the whole
// lookup with ErrUnknownTag.
func TagsByIDs[T any](tx *gorm.DB, userID uint, ids []uint) ([]T, error) {
	unique := dedupIDs(ids)

	if len(unique) == 0 {
		return []T{}, nil
	}

	var tags []T

	if err := tx.Scopes(Owned(userID)).Where("id IN ?", unique).Find(&tags).Error; err != nil {
		return nil, err
	}

	if len(tags) != len(unique) {
		return nil, ErrUnknownTag
	}

	return tags, nil
}

func dedupIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}

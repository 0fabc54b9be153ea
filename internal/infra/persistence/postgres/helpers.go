package postgres

import (
	"context"

	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/patch"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// writeErrorMapper turns a driver error into a domain error.
type writeErrorMapper func(err error, details string) error

func defaultWriteError(err error, details string) error {
	return domainerrors.NewDatabaseExecuteError(err, details)
}

// updateColumns applies a targeted UPDATE of cols to the row id of the
// table behind modelPtr. An empty column set only checks that the row exists.
func updateColumns(
	ctx context.Context,
	db *gorm.DB,
	modelPtr any,
	id uuid.UUID,
	cols patch.Columns,
	missing error,
	mapErr writeErrorMapper,
) error {
	if len(cols) == 0 {
		var count int64
		if err := db.WithContext(ctx).Model(modelPtr).Where("id = ?", id).Count(&count).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to check row before update")
		}
		if count == 0 {
			return missing
		}

		return nil
	}

	result := db.WithContext(ctx).Model(modelPtr).Where("id = ?", id).Updates(map[string]any(cols))
	if result.Error != nil {
		return mapErr(result.Error, "failed to update row")
	}
	if result.RowsAffected == 0 {
		return missing
	}

	return nil
}

// deleteByID hard-deletes one row and reports missing when nothing matched.
func deleteByID(ctx context.Context, db *gorm.DB, modelPtr any, id uuid.UUID, missing error) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(modelPtr)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete row")
	}
	if result.RowsAffected == 0 {
		return missing
	}

	return nil
}

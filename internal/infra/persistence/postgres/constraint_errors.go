package postgres

import (
	"strings"

	domainerrors "feira/internal/domain/errors"
	"feira/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation also matches driver messages because
// gorm.ErrDuplicatedKey needs TranslateError, which go-lib does not set.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "sqlstate 23505") ||
		strings.Contains(errMsg, "duplicate key value") ||
		strings.Contains(errMsg, "unique constraint failed")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "sqlstate 23503") || strings.Contains(errMsg, "foreign key constraint failed")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "sqlstate 23514") || strings.Contains(errMsg, "check constraint failed")
}

// emailWriteError maps a failed insert or update on a table whose only
// unique column is email.
func emailWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrDuplicateEmail.WrapMessage(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// productWriteError maps a failed product insert or update.
func productWriteError(err error, details string) error {
	switch {
	case isCheckConstraintViolation(err):
		return domainerrors.ErrInvalidPrice.WrapMessage(details)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrStallNotFound.WrapMessage(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// notFound maps gorm.ErrRecordNotFound to the given sentinel.
func notFound(err error, sentinel error, details string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

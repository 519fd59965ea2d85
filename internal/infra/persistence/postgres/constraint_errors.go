package postgres

import (
	"gorm.io/gorm"

	"clinic/internal/errors"
)

// isUniqueConstraintViolation reports whether the error came from a unique
// constraint. Relies on gorm's TranslateError support.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isForeignKeyViolation reports whether the error came from a foreign key
// constraint.
func isForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// isRecordNotFound reports whether the error is gorm's record-not-found.
func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

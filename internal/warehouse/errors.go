package warehouse

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/seqwell/mlwh/internal/entity"
)

var (
	// ErrNotFound is returned by point lookups that match zero rows.
	ErrNotFound = errors.New("warehouse: record not found")

	// ErrMultipleMatches is returned by point lookups that match more than
	// one row. The lookup keys are unique by warehouse invariant, so this
	// signals upstream data corruption and is never resolved by picking a
	// row.
	ErrMultipleMatches = errors.New("warehouse: multiple records match")

	// ErrConstraintViolation marks storage-layer constraint failures.
	ErrConstraintViolation = errors.New("warehouse: constraint violation")
)

// IsConstraintViolation reports whether err is a uniqueness, foreign-key,
// check or enum violation, from either this layer or the driver. Driver
// errors are recognized via GORM's translated error values, which requires
// the connection to be opened with TranslateError set.
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConstraintViolation) ||
		errors.Is(err, entity.ErrInvalidPlatform) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	// Not every driver translates its constraint errors to gorm's typed
	// values.
	msg := err.Error()
	for _, marker := range []string{
		"constraint failed",
		"UNIQUE constraint",
		"unique constraint",
		"foreign key constraint",
		"CHECK constraint",
		"invalid input value for enum",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

package inventory

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrDuplicateName = errors.New("product name already exists")
)

// InvalidInputError reports a malformed or missing required field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// StorageError wraps an underlying store failure.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "storage error: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// translate maps gorm and driver errors onto the service taxonomy.
// A unique violation raised at insert time is reported exactly like the
// pre-insert duplicate check, so callers only ever see ErrDuplicateName.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err):
		return ErrDuplicateName
	default:
		return &StorageError{Err: err}
	}
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value") // postgres
}

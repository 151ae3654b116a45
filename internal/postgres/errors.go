package postgres

import (
	"errors"

	"gorm.io/gorm"
)

// Common database error types that can be used by consumers of this package.
// These provide a standardized set of errors that abstract away the
// underlying database-specific error details.
var (
	// ErrRecordNotFound is returned when a query doesn't find any matching records
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidData is returned when the data being queried doesn't meet validation rules
	ErrInvalidData = errors.New("invalid data")

	// ErrUnavailable is returned when the database connection cannot be obtained
	ErrUnavailable = errors.New("database unavailable")
)

// TranslateError converts GORM/database-specific errors into standardized application errors.
// It maps common database errors to the standardized error types defined above.
// If an error doesn't match any known type, it's returned unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case errors.Is(err, gorm.ErrInvalidData):
		return ErrInvalidData
	case errors.Is(err, gorm.ErrInvalidDB):
		return ErrUnavailable
	}

	return err
}

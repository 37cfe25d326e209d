package services

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors the controllers translate into HTTP status codes.
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")
)

// translate maps store-level constraint failures onto the service error
// taxonomy. Requires TranslateError on the gorm config so both the
// postgres driver and the sqlite test driver report typed errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrNotFound
	}
	return err
}

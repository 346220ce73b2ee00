package repositories

import (
	"database/sql"
	"errors"

	"travelmitr/internal/domain"
)

func storageErr(op string, err error) error {
	return domain.StorageError{Op: op, Err: err}
}

// notFoundOr maps sql.ErrNoRows to NotFoundError and everything else to StorageError.
func notFoundOr(resource, op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: resource, Err: err}
	}
	return storageErr(op, err)
}

package repository

import (
	"database/sql"

	"github.com/goliatone/go-errors"
)

// notFound builds the record-not-found error surfaced as a 404
func notFound(entity string, id any) *errors.Error {
	return errors.New(entity+" not found", errors.CategoryNotFound).
		WithTextCode("RECORD_NOT_FOUND").
		WithCode(errors.CodeNotFound).
		WithMetadata(map[string]any{"id": id})
}

// scanErr maps the driver's empty-result error to a not-found error
func scanErr(err error, entity string, id any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(entity, id)
	}
	return errors.Wrap(err, errors.CategoryInternal, "query failed")
}

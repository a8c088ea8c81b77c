package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"book-management/internal/shared/fault"
)

// ClassifyError sorts a pgx error into the fault taxonomy. SQLSTATE class 23
// covers integrity violations (unique, not-null, foreign key); everything
// else is treated as an operational store failure.
func ClassifyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == "23" {
		return &fault.ConstraintError{Err: err}
	}
	return &fault.StoreError{Err: err}
}

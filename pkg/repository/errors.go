package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// MapError wraps a database error with a domain sentinel so callers can test
// the failure kind with errors.Is. PostgreSQL errors are reduced to their
// message and SQLSTATE code. sql.ErrNoRows is wrapped like any other error.
func MapError(err error, domainErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domainErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %s (sqlstate %s)", domainErr, pgErr.Message, pgErr.Code)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: no rows returned", domainErr)
	}

	return fmt.Errorf("%w: %w", domainErr, err)
}

// Package sqlerr classifies low-level postgres driver errors into the
// application's error taxonomy. Repositories pass every storage error
// through Classify so callers can distinguish transient infrastructure
// failures (worth retrying) from everything else.
package sqlerr

import (
	"database/sql/driver"
	"errors"
	"strings"

	"ordertracking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Transient postgres error codes. Class 08 covers connection exceptions.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
	classConnectionException = "08"
)

// Classify wraps transient driver failures in a StoreUnavailableError so the
// caller can retry the whole unit of work. Any other error is returned as is.
//
// The gorm postgres driver is pgx-based and reports server errors as
// *pgconn.PgError; *pq.Error is matched too for connections opened through
// lib/pq directly.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, driver.ErrBadConn) {
		return errs.NewStoreUnavailableError(op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && isTransient(pgErr.Code) {
		return errs.NewStoreUnavailableError(op, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && isTransient(string(pqErr.Code)) {
		return errs.NewStoreUnavailableError(op, err)
	}

	return err
}

func isTransient(code string) bool {
	switch code {
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return true
	}

	return strings.HasPrefix(code, classConnectionException)
}

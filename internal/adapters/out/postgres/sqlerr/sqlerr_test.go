package sqlerr_test

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"ordertracking/internal/adapters/out/postgres/sqlerr"
	"ordertracking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_NilError(t *testing.T) {
	assert.NoError(t, sqlerr.Classify("get order", nil))
}

func TestClassify_TransientPgconnErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"SerializationFailure", "40001"},
		{"DeadlockDetected", "40P01"},
		{"LockNotAvailable", "55P03"},
		{"ConnectionFailure", "08006"},
		{"ConnectionException", "08000"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cause := &pgconn.PgError{Code: test.code, Message: "transient failure"}

			err := sqlerr.Classify("update order", cause)

			require.ErrorIs(t, err, errs.ErrStoreUnavailable)
			assert.ErrorIs(t, err, cause)
		})
	}
}

func TestClassify_TransientPqErrors(t *testing.T) {
	tests := []struct {
		name string
		code pq.ErrorCode
	}{
		{"SerializationFailure", "40001"},
		{"DeadlockDetected", "40P01"},
		{"LockNotAvailable", "55P03"},
		{"ConnectionFailure", "08006"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cause := &pq.Error{Code: test.code, Message: "transient failure"}

			err := sqlerr.Classify("update order", cause)

			require.ErrorIs(t, err, errs.ErrStoreUnavailable)
			assert.ErrorIs(t, err, cause)
		})
	}
}

func TestClassify_BadConnection(t *testing.T) {
	err := sqlerr.Classify("add event", driver.ErrBadConn)

	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	assert.ErrorIs(t, err, driver.ErrBadConn)
}

func TestClassify_WrappedTransientError(t *testing.T) {
	cause := fmt.Errorf("exec statement: %w", &pgconn.PgError{Code: "40001"})

	err := sqlerr.Classify("update order", cause)

	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
}

func TestClassify_NonTransientCodePassesThrough(t *testing.T) {
	cause := &pgconn.PgError{Code: "23505", Message: "duplicate key value"}

	err := sqlerr.Classify("add order", cause)

	assert.Equal(t, error(cause), err)
	assert.NotErrorIs(t, err, errs.ErrStoreUnavailable)
}

func TestClassify_PlainErrorPassesThrough(t *testing.T) {
	cause := errors.New("unexpected failure")

	err := sqlerr.Classify("get order", cause)

	assert.Equal(t, cause, err)
	assert.NotErrorIs(t, err, errs.ErrStoreUnavailable)
}

package services_test

import (
	"testing"
	"time"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/core/domain/services"
	"ordertracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEvent(t *testing.T, orderID kernel.UUID, status order.Status, created time.Time) *order.StatusEvent {
	t.Helper()
	e, err := order.NewStatusEvent(kernel.NewUUID(), orderID, status, created)
	require.NoError(t, err)
	return e
}

func TestStatusProjector_Derive(t *testing.T) {
	projector := services.NewStatusProjector()
	orderID := kernel.NewUUID()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty ledger derives to Unset", func(t *testing.T) {
		assert.Equal(t, order.Unset, projector.Derive(nil))
	})

	t.Run("single event derives to its status", func(t *testing.T) {
		events := []*order.StatusEvent{mustEvent(t, orderID, order.Pending, t0)}

		assert.Equal(t, order.Pending, projector.Derive(events))
	})

	t.Run("max timestamp wins over insertion order", func(t *testing.T) {
		events := []*order.StatusEvent{
			mustEvent(t, orderID, order.Complete, t0.Add(10*time.Second)),
			mustEvent(t, orderID, order.Pending, t0),
			mustEvent(t, orderID, order.Canceled, t0.Add(5*time.Second)),
		}

		assert.Equal(t, order.Complete, projector.Derive(events))
	})
}

func TestStatusProjector_DeriveFromLatest(t *testing.T) {
	projector := services.NewStatusProjector()

	t.Run("nil latest derives to Unset", func(t *testing.T) {
		assert.Equal(t, order.Unset, projector.DeriveFromLatest(nil))
	})

	t.Run("non-nil latest derives to its status", func(t *testing.T) {
		e := mustEvent(t, kernel.NewUUID(), order.Canceled, time.Now())

		assert.Equal(t, order.Canceled, projector.DeriveFromLatest(e))
	})
}

func TestStatusProjector_VerifyProjection(t *testing.T) {
	projector := services.NewStatusProjector()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("consistent projection passes", func(t *testing.T) {
		id := kernel.NewUUID()
		aggregate, err := order.RestoreOrder(id, order.Pending)
		require.NoError(t, err)
		latest := mustEvent(t, id, order.Pending, t0)

		require.NoError(t, projector.VerifyProjection(aggregate, latest))
	})

	t.Run("empty ledger with Unset projection passes", func(t *testing.T) {
		aggregate, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)

		require.NoError(t, projector.VerifyProjection(aggregate, nil))
	})

	t.Run("stale projection is an invariant violation", func(t *testing.T) {
		id := kernel.NewUUID()
		aggregate, err := order.RestoreOrder(id, order.Pending)
		require.NoError(t, err)
		latest := mustEvent(t, id, order.Complete, t0)

		err = projector.VerifyProjection(aggregate, latest)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvariantViolation)
		assert.Contains(t, err.Error(), "stored=pending")
		assert.Contains(t, err.Error(), "derived=complete")
	})

	t.Run("projection left behind after last delete is a violation", func(t *testing.T) {
		aggregate, err := order.RestoreOrder(kernel.NewUUID(), order.Canceled)
		require.NoError(t, err)

		err = projector.VerifyProjection(aggregate, nil)

		require.ErrorIs(t, err, errs.ErrInvariantViolation)
	})

	t.Run("unconstructed order fails validation", func(t *testing.T) {
		var aggregate order.Order

		err := projector.VerifyProjection(&aggregate, nil)

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

package guard_test

import (
	"errors"
	"testing"

	"ordertracking/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be
// used in a command object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type RecordRequest struct {
		orderID string
		status  string
		guard   guard.ConstructorGuard
	}

	var errRequestNotConstructed = errors.New("RecordRequest must be created via newRecordRequest")

	newRecordRequest := func(orderID, status string) (RecordRequest, error) {
		if orderID == "" {
			return RecordRequest{}, errors.New("order ID is required")
		}
		if status == "" {
			return RecordRequest{}, errors.New("status is required")
		}
		return RecordRequest{
			orderID: orderID,
			status:  status,
			guard:   guard.NewConstructorGuard(),
		}, nil
	}

	validateRequest := func(r RecordRequest) error {
		return r.guard.Validate(errRequestNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		req, err := newRecordRequest("123", "pending")

		// Then
		require.NoError(t, err)
		require.NoError(t, validateRequest(req))
		assert.Equal(t, "123", req.orderID)
		assert.Equal(t, "pending", req.status)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var req RecordRequest // zero value

		// When
		err := validateRequest(req)

		// Then
		require.Error(t, err)
		assert.Equal(t, errRequestNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newRecordRequest("", "pending")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "order ID is required")

		_, err = newRecordRequest("123", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is required")
	})
}

package commands_test

import (
	"testing"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecomputeLatestStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewRecomputeLatestStatusCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
}

func TestNewRecomputeLatestStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewRecomputeLatestStatusCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestRecomputeLatestStatusCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.RecomputeLatestStatusCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRecomputeLatestStatusCommandIsNotConstructed)
}

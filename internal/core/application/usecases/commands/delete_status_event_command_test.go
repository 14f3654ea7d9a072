package commands_test

import (
	"testing"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteStatusEventCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteStatusEventCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.EventID())
}

func TestNewDeleteStatusEventCommand_InvalidEventID(t *testing.T) {
	_, err := commands.NewDeleteStatusEventCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestDeleteStatusEventCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.DeleteStatusEventCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeleteStatusEventCommandIsNotConstructed)
}

package commands

import (
	"errors"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/guard"
)

var (
	ErrDeleteStatusEventCommandIsNotConstructed = errors.New(
		"DeleteStatusEventCommand must be created via NewDeleteStatusEventCommand constructor",
	)
)

// DeleteStatusEventCommand represents a request to remove a status event from
// the ledger. Deleting an event and recomputing the owning order's projected
// latest status are one atomic unit of work: removing the winning event
// shifts the projection to the next event, or to Unset when none remain.
type DeleteStatusEventCommand struct { //nolint:recvcheck //using for validation
	eventID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteStatusEventCommand creates a command to delete a status event.
// Validates that the event ID is a properly constructed UUID.
func NewDeleteStatusEventCommand(eventID kernel.UUID) (DeleteStatusEventCommand, error) {
	cmd := DeleteStatusEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setEventID(eventID); err != nil {
		return DeleteStatusEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteStatusEventCommandIsNotConstructed if validation fails.
func (c DeleteStatusEventCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStatusEventCommandIsNotConstructed)
}

// EventID returns the identifier of the event to delete.
func (c DeleteStatusEventCommand) EventID() kernel.UUID {
	return c.eventID
}

func (c *DeleteStatusEventCommand) setEventID(eventID kernel.UUID) error {
	if err := eventID.Validate(); err != nil {
		return err
	}

	c.eventID = eventID
	return nil
}

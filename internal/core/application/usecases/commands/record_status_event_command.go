package commands

import (
	"errors"
	"time"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/guard"
)

var (
	ErrRecordStatusEventCommandIsNotConstructed = errors.New(
		"RecordStatusEventCommand must be created via NewRecordStatusEventCommand constructor",
	)
)

// RecordStatusEventCommand represents a request to append a status event to
// an order's ledger. Recording the event and recomputing the order's
// projected latest status are one atomic unit of work.
//
// A zero created time means "now". Backdated and future timestamps are
// accepted: the ledger does not validate ordering, because the projection is
// derived from the maximum timestamp at recompute time.
//
// Example:
//
//	cmd, err := NewRecordStatusEventCommand(kernel.NewUUID(), orderID, order.Complete, time.Time{})
//	if err != nil {
//	    return fmt.Errorf("invalid event data: %w", err)
//	}
//
//	handler := NewRecordStatusEventCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record event: %w", err)
//	}
type RecordStatusEventCommand struct { //nolint:recvcheck //using for validation
	eventID kernel.UUID
	orderID kernel.UUID
	status  order.Status
	created time.Time

	guard guard.ConstructorGuard
}

// NewRecordStatusEventCommand creates a command to record a status event.
// Validates both identifiers and the status; the created timestamp may be
// zero to default to the current time.
func NewRecordStatusEventCommand(
	eventID kernel.UUID,
	orderID kernel.UUID,
	status order.Status,
	created time.Time,
) (RecordStatusEventCommand, error) {
	cmd := RecordStatusEventCommand{
		created: created,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEventID(eventID),
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return RecordStatusEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordStatusEventCommandIsNotConstructed if validation fails.
func (c RecordStatusEventCommand) Validate() error {
	return c.guard.Validate(ErrRecordStatusEventCommandIsNotConstructed)
}

// EventID returns the identifier the new event will carry.
func (c RecordStatusEventCommand) EventID() kernel.UUID {
	return c.eventID
}

// OrderID returns the identifier of the owning order.
func (c RecordStatusEventCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the status the event records.
func (c RecordStatusEventCommand) Status() order.Status {
	return c.status
}

// Created returns the requested observation timestamp.
// A zero value means the event defaults to the current time.
func (c RecordStatusEventCommand) Created() time.Time {
	return c.created
}

func (c *RecordStatusEventCommand) setEventID(eventID kernel.UUID) error {
	if err := eventID.Validate(); err != nil {
		return err
	}

	c.eventID = eventID
	return nil
}

func (c *RecordStatusEventCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordStatusEventCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

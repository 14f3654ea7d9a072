// Package generator produces bulk sample data for local development and
// load experiments. It drives the regular command handlers rather than
// writing to storage directly, so every generated order and event goes
// through the same validation and projection path as production traffic.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
)

const (
	// DefaultOrderCount is the number of orders seeded when no count is given.
	DefaultOrderCount = 1000

	maxEventsPerOrder = 5
	maxBackdateDays   = 1000
)

// Generator seeds the store with randomized orders and status events.
type Generator struct {
	purgeOrdersHandler commands.PurgeOrdersCommandHandler
	createOrderHandler commands.CreateOrderCommandHandler
	recordEventHandler commands.RecordStatusEventCommandHandler

	rng *rand.Rand
}

// NewGenerator creates a generator backed by the given command handlers.
func NewGenerator(
	purgeOrdersHandler commands.PurgeOrdersCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	recordEventHandler commands.RecordStatusEventCommandHandler,
) *Generator {
	return &Generator{
		purgeOrdersHandler: purgeOrdersHandler,
		createOrderHandler: createOrderHandler,
		recordEventHandler: recordEventHandler,
		rng:                rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate wipes all existing orders and creates count fresh ones. Each order
// receives between zero and maxEventsPerOrder events with a random status and
// a creation time backdated up to maxBackdateDays days. The first error stops
// the run.
func (g *Generator) Generate(ctx context.Context, count int) error {
	if count <= 0 {
		count = DefaultOrderCount
	}

	if err := g.purgeOrdersHandler.Handle(ctx, commands.NewPurgeOrdersCommand()); err != nil {
		return fmt.Errorf("purge existing orders: %w", err)
	}

	for i := 0; i < count; i++ {
		if err := g.generateOrder(ctx); err != nil {
			return fmt.Errorf("generate order %d of %d: %w", i+1, count, err)
		}
	}

	return nil
}

func (g *Generator) generateOrder(ctx context.Context) error {
	orderID := kernel.NewUUID()

	createCommand, err := commands.NewCreateOrderCommand(orderID)
	if err != nil {
		return err
	}
	if err := g.createOrderHandler.Handle(ctx, createCommand); err != nil {
		return err
	}

	// Roughly half the orders stay without any events, which keeps the
	// unset projection well represented in the generated data.
	eventCount := g.rng.Intn(2*maxEventsPerOrder+1) - maxEventsPerOrder
	for j := 0; j < eventCount; j++ {
		if err := g.generateEvent(ctx, orderID); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) generateEvent(ctx context.Context, orderID kernel.UUID) error {
	statuses := order.AllStatuses()
	status := statuses[g.rng.Intn(len(statuses))]
	created := time.Now().UTC().AddDate(0, 0, -g.rng.Intn(maxBackdateDays+1))

	recordCommand, err := commands.NewRecordStatusEventCommand(
		kernel.NewUUID(),
		orderID,
		status,
		created,
	)
	if err != nil {
		return err
	}

	return g.recordEventHandler.Handle(ctx, recordCommand)
}

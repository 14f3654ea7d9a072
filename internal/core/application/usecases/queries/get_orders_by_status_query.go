package queries

import (
	"errors"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
)

// GetOrdersByStatusQuery retrieves all orders whose projected latest status
// equals the given filter. The filter must be a concrete status; orders with
// no status events (Unset projection) are stored as NULL and can never match.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(order.Canceled)
//	if err != nil {
//	    return fmt.Errorf("invalid filter: %w", err)
//	}
//
//	handler := NewGetOrdersByStatusQueryHandler(db)
//	canceled, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list canceled orders: %w", err)
//	}
//
//	fmt.Printf("%s\n%d canceled orders\n", query.SQL(), len(canceled))
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query filtering orders by projected status.
// Validates that the status is one of the recordable statuses.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	query := GetOrdersByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setStatus(status); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status the query filters on.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// SQL returns the text of the statement the handler will execute,
// for diagnostics and reporting.
func (q GetOrdersByStatusQuery) SQL() string {
	return getOrdersByStatusSQL
}

func (q *GetOrdersByStatusQuery) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}

// GetOrdersByStatusQueryResponse represents one matching order.
type GetOrdersByStatusQueryResponse struct {
	ID           kernel.UUID
	LatestStatus order.Status
}

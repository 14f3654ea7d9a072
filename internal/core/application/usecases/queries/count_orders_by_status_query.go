package queries

import (
	"errors"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/guard"
)

var (
	ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
		"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
	)
)

// CountOrdersByStatusQuery counts orders whose projected latest status equals
// the given filter. The count runs as SQL COUNT against the projection
// column; no rows are materialized.
type CountOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewCountOrdersByStatusQuery creates a query counting orders by projected status.
// Validates that the status is one of the recordable statuses.
func NewCountOrdersByStatusQuery(status order.Status) (CountOrdersByStatusQuery, error) {
	query := CountOrdersByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setStatus(status); err != nil {
		return CountOrdersByStatusQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCountOrdersByStatusQueryIsNotConstructed if validation fails.
func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status the query counts.
func (q CountOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// SQL returns the text of the statement the handler will execute,
// for diagnostics and reporting.
func (q CountOrdersByStatusQuery) SQL() string {
	return countOrdersByStatusSQL
}

func (q *CountOrdersByStatusQuery) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}

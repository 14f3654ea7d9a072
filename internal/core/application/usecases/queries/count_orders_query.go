package queries

import (
	"errors"

	"ordertracking/internal/pkg/guard"
)

var (
	ErrCountOrdersQueryIsNotConstructed = errors.New(
		"CountOrdersQuery must be created via NewCountOrdersQuery constructor",
	)
)

// CountOrdersQuery counts every order in the store, regardless of projected
// status. Used by the seed and report tools to summarize the data set.
type CountOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewCountOrdersQuery creates a query counting all orders.
// This is a parameterless query.
func NewCountOrdersQuery() CountOrdersQuery {
	return CountOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrCountOrdersQueryIsNotConstructed if validation fails.
func (q CountOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersQueryIsNotConstructed)
}

// SQL returns the text of the statement the handler will execute,
// for diagnostics and reporting.
func (q CountOrdersQuery) SQL() string {
	return countOrdersSQL
}

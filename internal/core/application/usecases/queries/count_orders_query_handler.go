package queries

import (
	"context"

	"gorm.io/gorm"
)

const countOrdersSQL = `
	SELECT COUNT(*)
	FROM orders
`

// CountOrdersQueryHandler counts all orders with a single COUNT statement.
type CountOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersQueryHandler creates a handler for total order counts.
// Requires a GORM database connection for query execution.
func NewCountOrdersQueryHandler(db *gorm.DB) CountOrdersQueryHandler {
	return CountOrdersQueryHandler{db: db}
}

// Handle executes the total count.
func (h CountOrdersQueryHandler) Handle(ctx context.Context, query CountOrdersQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	row := h.db.WithContext(ctx).Raw(countOrdersSQL).Row()
	if err := row.Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

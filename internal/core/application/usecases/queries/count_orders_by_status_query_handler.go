package queries

import (
	"context"

	"gorm.io/gorm"
)

const countOrdersByStatusSQL = `
	SELECT COUNT(*)
	FROM orders
	WHERE latest_status = ?
`

// CountOrdersByStatusQueryHandler counts orders by projected status with a
// single COUNT statement.
type CountOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersByStatusQueryHandler creates a handler for status-filtered order counts.
// Requires a GORM database connection for query execution.
func NewCountOrdersByStatusQueryHandler(db *gorm.DB) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{db: db}
}

// Handle executes the count against the latest_status projection.
func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	row := h.db.WithContext(ctx).Raw(countOrdersByStatusSQL, string(query.Status())).Row()
	if err := row.Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

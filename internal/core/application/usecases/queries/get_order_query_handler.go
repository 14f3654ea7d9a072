package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const getOrderSQL = `
	SELECT
		id,
		latest_status
	FROM orders
	WHERE id = ?
`

// GetOrderQueryHandler reads a single order's projection row.
// A NULL latest_status column maps to Unset.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns an ObjectNotFoundError when no order has the given ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(getOrderSQL, query.OrderID().String()).Row()

	var id uuid.UUID
	var latestStatus sql.NullString

	if err := row.Scan(&id, &latestStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{ID: orderID, LatestStatus: order.Unset}
	if latestStatus.Valid {
		resp.LatestStatus = order.Status(latestStatus.String)
	}

	return resp, nil
}

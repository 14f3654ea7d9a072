// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The latest_status column is the denormalized projection of the order's
// status event ledger; it is indexed because the status-filtered queries hit
// it directly. An Unset projection is stored as NULL.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	LatestStatus *string   `gorm:"type:text;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Unset maps to a NULL latest_status.
func fromDomain(aggregate *order.Order) OrderDTO {
	var latestStatus *string
	if !aggregate.LatestStatus().IsUnset() {
		s := string(aggregate.LatestStatus())
		latestStatus = &s
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		LatestStatus: latestStatus,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	latestStatus := order.Unset
	if dto.LatestStatus != nil {
		latestStatus = order.Status(*dto.LatestStatus)
	}

	return order.RestoreOrder(id, latestStatus)
}

// Package eventrepo provides data transfer objects and mapping functions for
// status event persistence. The status_events table is the ledger from which
// every order's latest_status projection is derived.
package eventrepo

import (
	"time"

	"ordertracking/internal/adapters/out/postgres/orderrepo"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// StatusEventDTO represents the database structure for persisting status events.
// The composite (order_id, created) index serves the latest-event lookup; the
// foreign key cascade deletes an order's events together with the order.
type StatusEventDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index:idx_status_events_order_created,priority:1"`
	Status  string    `gorm:"type:text"`
	Created time.Time `gorm:"index:idx_status_events_order_created,priority:2"`

	Order orderrepo.OrderDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for status event entities.
// Overrides GORM's default naming convention to use "status_events".
func (StatusEventDTO) TableName() string {
	return "status_events"
}

// fromDomain converts a status event domain entity to its database representation.
func fromDomain(event *order.StatusEvent) StatusEventDTO {
	return StatusEventDTO{
		ID:      event.ID().Bytes(),
		OrderID: event.OrderID().Bytes(),
		Status:  string(event.Status()),
		Created: event.Created(),
	}
}

// toDomain converts a database DTO to a status event entity using RestoreStatusEvent.
func toDomain(dto StatusEventDTO) (*order.StatusEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreStatusEvent(id, orderID, order.Status(dto.Status), dto.Created)
}

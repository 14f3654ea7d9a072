package eventrepo

import (
	"context"
	"errors"

	"ordertracking/internal/adapters/out/postgres/sqlerr"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStatusEventRepository implements StatusEventRepository using GORM.
type GormStatusEventRepository struct {
	db *gorm.DB
}

// NewGormStatusEventRepository creates a new GORM status event repository.
func NewGormStatusEventRepository(db *gorm.DB) *GormStatusEventRepository {
	return &GormStatusEventRepository{db: db}
}

// Add saves a new status event to the ledger.
func (r *GormStatusEventRepository) Add(ctx context.Context, event *order.StatusEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return sqlerr.Classify("add status event", err)
	}

	return nil
}

// Get retrieves a status event by ID.
func (r *GormStatusEventRepository) Get(ctx context.Context, id kernel.UUID) (*order.StatusEvent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StatusEventDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("statusEvent", id.String())
		}
		return nil, sqlerr.Classify("get status event", err)
	}

	return toDomain(dto)
}

// Delete removes a status event from the ledger.
func (r *GormStatusEventRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&StatusEventDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return sqlerr.Classify("delete status event", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("statusEvent", id.String())
	}

	return nil
}

// GetLatestForOrder retrieves the event that determines the order's current
// status: greatest created timestamp, ties broken by greatest event ID.
// Returns (nil, nil) when the order has no events.
func (r *GormStatusEventRepository) GetLatestForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*order.StatusEvent, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto StatusEventDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created DESC, id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, sqlerr.Classify("get latest status event", err)
	}

	return toDomain(dto)
}

// GetAllForOrder retrieves every event belonging to an order, most recent
// first, with the same tie-break as GetLatestForOrder.
func (r *GormStatusEventRepository) GetAllForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*order.StatusEvent, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusEventDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, sqlerr.Classify("get status events", err)
	}

	events := make([]*order.StatusEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		events = append(events, event)
	}

	return events, nil
}

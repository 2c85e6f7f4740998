package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/core/domain/model/order"
	"feedo/internal/core/ports"
	"feedo/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its item snapshot to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the mutable fields of an existing order to the database.
// The item snapshot is immutable and never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"courier_id":   dto.CourierID,
			"status":       dto.Status,
			"assigned_at":  dto.AssignedAt,
			"delivered_at": dto.DeliveredAt,
			"deleted":      dto.Deleted,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Bind persists the aggregate's courier binding with a conditional update
// that only succeeds while the stored row has no courier. Losing the race
// yields ports.ErrOrderAlreadyAssigned.
func (r *GormOrderRepository) Bind(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND courier_id IS NULL", dto.ID).
		Updates(map[string]any{
			"courier_id":  dto.CourierID,
			"status":      dto.Status,
			"assigned_at": dto.AssignedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ports.ErrOrderAlreadyAssigned
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingUnassigned retrieves orders awaiting dispatch, oldest first.
func (r *GormOrderRepository) GetAllPendingUnassigned(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("status = ? AND courier_id IS NULL AND deleted = false", order.Pending.String()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// HasOtherActiveDeliveries reports whether the courier has any InDelivery
// order other than the given one.
func (r *GormOrderRepository) HasOtherActiveDeliveries(
	ctx context.Context, courierID kernel.UUID, excludeOrderID kernel.UUID,
) (bool, error) {
	if err := courierID.Validate(); err != nil {
		return false, err
	}
	if err := excludeOrderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("courier_id = ? AND status = ? AND id != ? AND deleted = false",
			courierID.Bytes(), order.InDelivery.String(), excludeOrderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

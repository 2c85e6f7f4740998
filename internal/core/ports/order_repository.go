package ports

import (
	"context"
	"errors"

	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/core/domain/model/order"
)

// ErrOrderAlreadyAssigned is returned by Bind when another transaction bound
// a courier to the order first. Callers treat it as a benign race outcome,
// not a failure.
var ErrOrderAlreadyAssigned = errors.New("order already assigned to a courier")

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate together with its item snapshot.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items, status, and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Bind persists the aggregate's courier assignment with a conditional
	// update that succeeds only while the stored row has no courier bound.
	// Returns ErrOrderAlreadyAssigned when a concurrent transaction won the
	// order first.
	Bind(ctx context.Context, aggregate *order.Order) error

	// GetAllPendingUnassigned retrieves orders awaiting dispatch: Pending
	// status, no courier bound, not deleted, oldest first.
	GetAllPendingUnassigned(ctx context.Context) ([]*order.Order, error)

	// HasOtherActiveDeliveries reports whether the courier carries any order
	// in InDelivery status other than the given one. Used when deciding
	// whether completing or refusing a delivery frees the courier.
	HasOtherActiveDeliveries(ctx context.Context, courierID kernel.UUID, excludeOrderID kernel.UUID) (bool, error)
}

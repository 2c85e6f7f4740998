// Package ports defines repository interfaces for the dispatch core.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"feedo/internal/core/domain/model/courier"
	"feedo/internal/core/domain/model/kernel"
)

// ErrCourierAlreadyBusy is returned by Reserve when another transaction
// claimed the courier first. Callers treat it as a benign race outcome,
// not a failure.
var ErrCourierAlreadyBusy = errors.New("courier already claimed by another delivery")

// CourierRepository defines the persistence contract for courier aggregates.
// Provides methods for storing, retrieving, and querying courier entities
// with their shift status and delivery stats.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, courier *courier.Courier) error

	// Reserve persists the courier's flip to Busy with a conditional update
	// that succeeds only while the stored row is still Available. Returns
	// ErrCourierAlreadyBusy when a concurrent transaction claimed the
	// courier first.
	Reserve(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllAvailable retrieves the dispatch candidate set: couriers in
	// Available status that are not soft-deleted.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)
}

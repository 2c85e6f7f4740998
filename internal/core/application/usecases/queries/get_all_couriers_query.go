package queries

import (
	"errors"
	"time"

	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/pkg/guard"
)

var ErrGetAllCouriersQueryIsNotConstructed = errors.New(
	"GetAllCouriersQuery must be created via NewGetAllCouriersQuery constructor",
)

// GetAllCouriersQuery retrieves the courier roster with shift status and
// delivery stats. Soft-deleted couriers are excluded.
type GetAllCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCouriersQuery creates a query to retrieve all couriers.
// This is a parameterless query.
func NewGetAllCouriersQuery() GetAllCouriersQuery {
	return GetAllCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllCouriersQueryIsNotConstructed if validation fails.
func (q GetAllCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCouriersQueryIsNotConstructed)
}

// GetAllCouriersQueryResponse is the read model of one courier on the roster.
type GetAllCouriersQueryResponse struct {
	ID              kernel.UUID
	Name            string
	VehicleType     string
	Status          string
	Rating          float64
	TotalDeliveries int
	LastDeliveryAt  *time.Time
}

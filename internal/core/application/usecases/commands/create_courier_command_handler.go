package commands

import (
	"context"

	"feedo/internal/core/domain/model/courier"
)

// CreateCourierCommandHandler handles the business logic for courier registration.
// New couriers start off shift and become dispatchable only after going on shift.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCourierCommandHandler creates a handler for courier registration operations.
// Requires a CourierUoWFactory for transactional persistence.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier registration command.
// Builds the aggregate in Offline status and persists it atomically.
func (h CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	registered, err := courier.NewCourier(cmd.CourierID(), cmd.Contact(), cmd.VehicleType(), cmd.Rating())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Add(ctx, registered); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

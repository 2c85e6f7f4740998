package commands

import (
	"context"
	"errors"
	"time"

	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/core/domain/model/order"
	"feedo/internal/core/domain/services"
	"feedo/internal/core/ports"
)

// AssignCourierCommandHandler orchestrates the courier dispatch process for
// a single order. Loads the order and the available courier pool, ranks the
// pool, and binds the winner inside one transaction.
//
// Both sides of the binding go through conditional updates: the order row is
// claimed only while still unbound, and the courier row is claimed only while
// still Available. Two concurrent dispatch attempts for the same order, or
// for two orders converging on the same courier, resolve safely: exactly one
// commits, the other observes the lost race and reports no assignment.
//
// Handle returns (false, nil) for every benign no-assignment outcome: the
// order is no longer an unbound Pending one, no eligible courier exists, or
// a concurrent attempt won either row. The order stays as it is and a later
// dispatch pass may retry.
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignCourierCommandHandler creates a handler for courier dispatch operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignCourierCommandHandler(uowFactory UoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command and reports whether a courier was bound.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) (bool, error) {
	if err := command.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	pending, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return false, err
	}

	if pending.Status() != order.Pending || pending.CourierID() != nil {
		return false, nil
	}

	couriers, err := courierRepo.GetAllAvailable(ctx)
	if err != nil {
		return false, err
	}

	assignedCourier, err := services.NewOrderDispatcher().Dispatch(pending, couriers, time.Now().UTC())
	if errors.Is(err, services.ErrNoEligibleCourier) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	err = orderRepo.Bind(ctx, pending)
	if errors.Is(err, ports.ErrOrderAlreadyAssigned) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	err = courierRepo.Reserve(ctx, assignedCourier)
	if errors.Is(err, ports.ErrCourierAlreadyBusy) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

// TryAssign adapts the handler to the DispatchTrigger interface used by
// order placement and the dispatch sweep.
func (h AssignCourierCommandHandler) TryAssign(ctx context.Context, orderID kernel.UUID) (bool, error) {
	command, err := NewAssignCourierCommand(orderID)
	if err != nil {
		return false, err
	}

	return h.Handle(ctx, command)
}

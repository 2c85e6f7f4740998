package commands

import (
	"context"
	"errors"
	"time"

	"feedo/internal/core/domain/model/courier"
	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/core/domain/model/order"
	"feedo/internal/core/ports"
)

// ErrOrderBelongsToAnotherCourier is returned when a courier tries to act on
// an order bound to someone else.
var ErrOrderBelongsToAnotherCourier = errors.New("order is bound to another courier")

// TransitionOrderCommandHandler applies order lifecycle transitions together
// with their courier side effects. Each transition runs in one transaction so
// the order status and the courier's shift status never diverge.
//
// Accepting an order straight from Pending binds the courier through the
// repository's conditional update, the same race guard dispatch uses, so a
// direct accept and a concurrent dispatch attempt cannot both win.
type TransitionOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for order lifecycle operations.
func NewTransitionOrderCommandHandler(uowFactory UoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
// Loads the order, applies the aggregate transition for the target status,
// adjusts the courier when the transition affects one, and commits atomically.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, command TransitionOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	switch command.Target() {
	case order.InDelivery:
		err = h.accept(ctx, uow, aggregate, *command.ActorCourierID())
	case order.Delivered:
		err = h.complete(ctx, uow, aggregate, *command.ActorCourierID())
	case order.Cancelled:
		if command.ActorCourierID() != nil {
			err = h.refuse(ctx, uow, aggregate, *command.ActorCourierID())
		} else {
			err = h.cancelByClient(ctx, uow, aggregate)
		}
	default:
		err = ErrTargetStatusIsNotSupported
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// accept moves the order to InDelivery on behalf of the courier. An unbound
// Pending order gets bound in the same step through the conditional update.
func (h TransitionOrderCommandHandler) accept(
	ctx context.Context, uow UoW, aggregate *order.Order, courierID kernel.UUID,
) error {
	performer, err := uow.CourierRepository().Get(ctx, courierID)
	if err != nil {
		return err
	}

	wasUnbound := aggregate.CourierID() == nil

	if err = aggregate.Accept(performer.ID(), time.Now().UTC()); err != nil {
		return err
	}

	wasIdle := performer.Status() != courier.Busy
	if wasIdle {
		if err = performer.MarkBusy(); err != nil {
			return err
		}
	}

	if wasUnbound {
		err = uow.OrderRepository().Bind(ctx, aggregate)
	} else {
		err = uow.OrderRepository().Update(ctx, aggregate)
	}
	if err != nil {
		return err
	}

	if !wasIdle {
		return uow.CourierRepository().Update(ctx, performer)
	}

	err = uow.CourierRepository().Reserve(ctx, performer)
	if errors.Is(err, ports.ErrCourierAlreadyBusy) {
		return courier.ErrCourierIsNotAvailable
	}
	return err
}

// complete marks the delivery finished on behalf of the bound courier and
// frees that courier unless other deliveries are still underway.
func (h TransitionOrderCommandHandler) complete(
	ctx context.Context, uow UoW, aggregate *order.Order, courierID kernel.UUID,
) error {
	if aggregate.CourierID() != nil && !aggregate.CourierID().IsEqual(courierID) {
		return ErrOrderBelongsToAnotherCourier
	}

	if err := aggregate.Complete(time.Now().UTC()); err != nil {
		return err
	}

	performer, err := uow.CourierRepository().Get(ctx, courierID)
	if err != nil {
		return err
	}

	hasOther, err := uow.OrderRepository().HasOtherActiveDeliveries(ctx, performer.ID(), aggregate.ID())
	if err != nil {
		return err
	}

	if err = performer.CompleteDelivery(*aggregate.DeliveredAt(), hasOther); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.CourierRepository().Update(ctx, performer)
}

// refuse cancels the delivery on behalf of the bound courier and releases the
// courier without touching delivery stats.
func (h TransitionOrderCommandHandler) refuse(
	ctx context.Context, uow UoW, aggregate *order.Order, courierID kernel.UUID,
) error {
	if aggregate.CourierID() == nil || !aggregate.CourierID().IsEqual(courierID) {
		return ErrOrderBelongsToAnotherCourier
	}

	if err := aggregate.RefuseByCourier(); err != nil {
		return err
	}

	performer, err := uow.CourierRepository().Get(ctx, courierID)
	if err != nil {
		return err
	}

	hasOther, err := uow.OrderRepository().HasOtherActiveDeliveries(ctx, performer.ID(), aggregate.ID())
	if err != nil {
		return err
	}

	if err = performer.ReleaseFromDelivery(hasOther); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.CourierRepository().Update(ctx, performer)
}

// cancelByClient soft-deletes the order from the client's history. No courier
// is involved: Pending orders are unbound and Delivered ones already freed theirs.
func (h TransitionOrderCommandHandler) cancelByClient(ctx context.Context, uow UoW, aggregate *order.Order) error {
	if err := aggregate.CancelByClient(); err != nil {
		return err
	}

	return uow.OrderRepository().Update(ctx, aggregate)
}

package commands

import (
	"errors"

	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/core/domain/model/order"
	"feedo/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
	ErrTargetStatusIsNotSupported = errors.New(
		"target status must be InDelivery, Delivered or Cancelled",
	)
	ErrActorCourierIsRequired = errors.New("courier id is required to accept or complete an order")
)

// TransitionOrderCommand represents a request to move an order through its
// lifecycle. The target status selects the operation:
//
//   - InDelivery: a courier accepts the order (actor courier required)
//   - Delivered: the bound courier completes the delivery (actor courier required)
//   - Cancelled with an actor courier: the courier refuses the delivery
//   - Cancelled without an actor courier: the client cancels the order
//
// Assigned is never a valid target: courier binding happens only through
// dispatch, not through a status write.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	target         order.Status
	actorCourierID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to move the order to the target status.
// actorCourierID is required for InDelivery and Delivered and selects the
// refusal path for Cancelled.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	actorCourierID *kernel.UUID,
) (TransitionOrderCommand, error) {
	command := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
		command.setActorCourierID(actorCourierID),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	if (command.target == order.InDelivery || command.target == order.Delivered) &&
		command.actorCourierID == nil {
		return TransitionOrderCommand{}, ErrActorCourierIsRequired
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order being transitioned.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested lifecycle status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// ActorCourierID returns the courier performing the transition, or nil for
// client-initiated operations.
func (c TransitionOrderCommand) ActorCourierID() *kernel.UUID {
	return c.actorCourierID
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	switch target {
	case order.InDelivery, order.Delivered, order.Cancelled:
		c.target = target
		return nil
	default:
		return ErrTargetStatusIsNotSupported
	}
}

func (c *TransitionOrderCommand) setActorCourierID(actorCourierID *kernel.UUID) error {
	if actorCourierID == nil {
		return nil
	}

	if err := actorCourierID.Validate(); err != nil {
		return err
	}

	c.actorCourierID = actorCourierID
	return nil
}

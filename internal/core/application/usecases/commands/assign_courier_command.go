package commands

import (
	"errors"

	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand triggers a dispatch attempt for a specific pending order.
// The handler ranks available couriers and binds the best one to the order.
//
// Example:
//
//	cmd, err := NewAssignCourierCommand(orderID)
//	if err != nil {
//	    return err
//	}
//	assigned, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if !assigned {
//	    log.Println("order stays pending")
//	}
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to dispatch a courier for the given order.
func NewAssignCourierCommand(orderID kernel.UUID) (AssignCourierCommand, error) {
	command := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return AssignCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCourierCommandIsNotConstructed if validation fails.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// OrderID returns the order awaiting a courier.
func (c AssignCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AssignCourierCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

package commands

import (
	"errors"

	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/pkg/guard"
)

var ErrSetCourierShiftCommandIsNotConstructed = errors.New(
	"SetCourierShiftCommand must be created via NewSetCourierShiftCommand constructor",
)

// SetCourierShiftCommand represents a courier's manual shift toggle:
// going on shift makes them dispatchable, going off shift hides them.
// The toggle is rejected while the courier carries an active delivery.
type SetCourierShiftCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	onShift   bool

	guard guard.ConstructorGuard
}

// NewSetCourierShiftCommand creates a command to toggle the courier's shift status.
func NewSetCourierShiftCommand(courierID kernel.UUID, onShift bool) (SetCourierShiftCommand, error) {
	command := SetCourierShiftCommand{
		onShift: onShift,
		guard:   guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return SetCourierShiftCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetCourierShiftCommandIsNotConstructed if validation fails.
func (c SetCourierShiftCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierShiftCommandIsNotConstructed)
}

// CourierID returns the courier toggling their shift.
func (c SetCourierShiftCommand) CourierID() kernel.UUID {
	return c.courierID
}

// OnShift reports the requested shift state: true for Available, false for Offline.
func (c SetCourierShiftCommand) OnShift() bool {
	return c.onShift
}

func (c *SetCourierShiftCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

package commands

import (
	"context"
)

// SetCourierShiftCommandHandler handles the courier shift toggle.
// The aggregate rejects toggles while the courier is Busy, so an active
// delivery can never be abandoned by going off shift.
type SetCourierShiftCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSetCourierShiftCommandHandler creates a handler for shift toggle operations.
func NewSetCourierShiftCommandHandler(uowFactory CourierUoWFactory) SetCourierShiftCommandHandler {
	return SetCourierShiftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shift toggle command.
// Loads the courier, applies the toggle, and persists the new status atomically.
func (h SetCourierShiftCommandHandler) Handle(ctx context.Context, cmd SetCourierShiftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	toggled, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if cmd.OnShift() {
		err = toggled.GoOnShift()
	} else {
		err = toggled.GoOffShift()
	}
	if err != nil {
		return err
	}

	if err = uow.CourierRepository().Update(ctx, toggled); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"feedo/internal/core/application/usecases/commands"
	"feedo/internal/core/domain/model/courier"
	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/pkg/errs"
)

func TestSetCourierShiftCommandHandler_Handle_GoOnShift(t *testing.T) {
	ctx := t.Context()

	offline, err := courier.NewCourier(kernel.NewUUID(), testContact(t), courier.VehicleBike, 4.0)
	require.NoError(t, err)

	cmd, err := commands.NewSetCourierShiftCommand(offline.ID(), true)
	require.NoError(t, err)

	courierRepo := new(MockAssignCourierRepository)
	uow := new(MockCourierUoW)
	uow.On("CourierRepository").Return(courierRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		courierRepo.On("Get", ctx, offline.ID()).Return(offline, nil).Once(),
		courierRepo.On("Update", ctx, offline).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetCourierShiftCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, courier.Available, offline.Status())
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetCourierShiftCommandHandler_Handle_GoOffShift(t *testing.T) {
	ctx := t.Context()

	available, err := courier.RestoreCourier(
		kernel.NewUUID(), testContact(t), courier.VehicleCar,
		courier.Available, 4.0, 12, nil, false,
	)
	require.NoError(t, err)

	cmd, err := commands.NewSetCourierShiftCommand(available.ID(), false)
	require.NoError(t, err)

	courierRepo := new(MockAssignCourierRepository)
	uow := new(MockCourierUoW)
	uow.On("CourierRepository").Return(courierRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	courierRepo.On("Get", ctx, available.ID()).Return(available, nil).Once()
	courierRepo.On("Update", ctx, available).Return(nil).Once()

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetCourierShiftCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, courier.Offline, available.Status())
}

func TestSetCourierShiftCommandHandler_Handle_BusyCourier(t *testing.T) {
	ctx := t.Context()

	busy := newTestBusyCourier(t)
	cmd, err := commands.NewSetCourierShiftCommand(busy.ID(), false)
	require.NoError(t, err)

	courierRepo := new(MockAssignCourierRepository)
	uow := new(MockCourierUoW)
	uow.On("CourierRepository").Return(courierRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	courierRepo.On("Get", ctx, busy.ID()).Return(busy, nil).Once()

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetCourierShiftCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, courier.ErrCourierIsBusy)
	courierRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

func TestSetCourierShiftCommandHandler_Handle_CourierNotFound(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewSetCourierShiftCommand(kernel.NewUUID(), true)
	require.NoError(t, err)

	courierRepo := new(MockAssignCourierRepository)
	uow := new(MockCourierUoW)
	uow.On("CourierRepository").Return(courierRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	courierRepo.On("Get", ctx, cmd.CourierID()).
		Return(nil, errs.NewObjectNotFoundError("courier", cmd.CourierID())).Once()

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetCourierShiftCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

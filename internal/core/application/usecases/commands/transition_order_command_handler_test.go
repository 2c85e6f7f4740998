package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"feedo/internal/core/application/usecases/commands"
	"feedo/internal/core/domain/model/courier"
	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/core/domain/model/order"
	"feedo/internal/pkg/errs"
)

func newTestBusyCourier(t *testing.T) *courier.Courier {
	t.Helper()

	contact, err := kernel.NewContact("Busy Courier", "", "busy@example.com")
	require.NoError(t, err)

	c, err := courier.RestoreCourier(
		kernel.NewUUID(), contact, courier.VehicleScooter,
		courier.Busy, 4.2, 7, nil, false,
	)
	require.NoError(t, err)
	return c
}

func newTestInDeliveryOrder(t *testing.T, courierID kernel.UUID) *order.Order {
	t.Helper()

	placed := newTestPendingOrder(t)
	require.NoError(t, placed.Accept(courierID, time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)))
	return placed
}

func TestTransitionOrderCommandHandler_Accept(t *testing.T) {
	ctx := t.Context()

	t.Run("pending_order_binds_through_conditional_update", func(t *testing.T) {
		placed := newTestPendingOrder(t)
		performer := newTestAvailableCourier(t)
		courierID := performer.ID()

		cmd, err := commands.NewTransitionOrderCommand(placed.ID(), order.InDelivery, &courierID)
		require.NoError(t, err)

		orderRepo := new(MockCreateOrderRepository)
		courierRepo := new(MockAssignCourierRepository)
		uow := new(MockAssignUoW)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("CourierRepository").Return(courierRepo)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			orderRepo.On("Get", ctx, placed.ID()).Return(placed, nil).Once(),
			courierRepo.On("Get", ctx, courierID).Return(performer, nil).Once(),
			orderRepo.On("Bind", ctx, placed).Return(nil).Once(),
			courierRepo.On("Reserve", ctx, performer).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockAssignUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewTransitionOrderCommandHandler(factory)
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, order.InDelivery, placed.Status())
		require.NotNil(t, placed.CourierID())
		assert.True(t, placed.CourierID().IsEqual(courierID))
		assert.Equal(t, courier.Busy, performer.Status())
		orderRepo.AssertExpectations(t)
		courierRepo.AssertExpectations(t)
	})

	t.Run("assigned_order_updates_in_place", func(t *testing.T) {
		performer := newTestBusyCourier(t)
		courierID := performer.ID()

		placed := newTestPendingOrder(t)
		require.NoError(t, placed.Assign(courierID, time.Now().UTC()))

		cmd, err := commands.NewTransitionOrderCommand(placed.ID(), order.InDelivery, &courierID)
		require.NoError(t, err)

		orderRepo := new(MockCreateOrderRepository)
		courierRepo := new(MockAssignCourierRepository)
		uow := new(MockAssignUoW)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("CourierRepository").Return(courierRepo)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			orderRepo.On("Get", ctx, placed.ID()).Return(placed, nil).Once(),
			courierRepo.On("Get", ctx, courierID).Return(performer, nil).Once(),
			orderRepo.On("Update", ctx, placed).Return(nil).Once(),
			courierRepo.On("Update", ctx, performer).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockAssignUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewTransitionOrderCommandHandler(factory)
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, order.InDelivery, placed.Status())
		orderRepo.AssertNotCalled(t, "Bind")
	})

	t.Run("different_courier_is_rejected", func(t *testing.T) {
		performer := newTestBusyCourier(t)
		intruder := newTestAvailableCourier(t)
		intruderID := intruder.ID()

		placed := newTestPendingOrder(t)
		require.NoError(t, placed.Assign(performer.ID(), time.Now().UTC()))

		cmd, err := commands.NewTransitionOrderCommand(placed.ID(), order.InDelivery, &intruderID)
		require.NoError(t, err)

		orderRepo := new(MockCreateOrderRepository)
		courierRepo := new(MockAssignCourierRepository)
		uow := new(MockAssignUoW)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("CourierRepository").Return(courierRepo)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("Get", ctx, placed.ID()).Return(placed, nil).Once()
		courierRepo.On("Get", ctx, intruderID).Return(intruder, nil).Once()

		factory := new(MockAssignUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewTransitionOrderCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, order.ErrCourierAlreadyAssigned)
		uow.AssertNotCalled(t, "Commit")
	})
}

func TestTransitionOrderCommandHandler_Complete(t *testing.T) {
	ctx := t.Context()

	t.Run("frees_courier_without_other_deliveries", func(t *testing.T) {
		performer := newTestBusyCourier(t)
		courierID := performer.ID()
		placed := newTestInDeliveryOrder(t, courierID)
		deliveriesBefore := performer.TotalDeliveries()

		cmd, err := commands.NewTransitionOrderCommand(placed.ID(), order.Delivered, &courierID)
		require.NoError(t, err)

		orderRepo := new(MockCreateOrderRepository)
		courierRepo := new(MockAssignCourierRepository)
		uow := new(MockAssignUoW)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("CourierRepository").Return(courierRepo)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			orderRepo.On("Get", ctx, placed.ID()).Return(placed, nil).Once(),
			courierRepo.On("Get", ctx, performer.ID()).Return(performer, nil).Once(),
			orderRepo.On("HasOtherActiveDeliveries", ctx, performer.ID(), placed.ID()).Return(false, nil).Once(),
			orderRepo.On("Update", ctx, placed).Return(nil).Once(),
			courierRepo.On("Update", ctx, performer).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockAssignUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewTransitionOrderCommandHandler(factory)
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, order.Delivered, placed.Status())
		assert.NotNil(t, placed.DeliveredAt())
		assert.Equal(t, courier.Available, performer.Status())
		assert.Equal(t, deliveriesBefore+1, performer.TotalDeliveries())
	})

	t.Run("courier_stays_busy_with_other_deliveries", func(t *testing.T) {
		performer := newTestBusyCourier(t)
		courierID := performer.ID()
		placed := newTestInDeliveryOrder(t, courierID)

		cmd, err := commands.NewTransitionOrderCommand(placed.ID(), order.Delivered, &courierID)
		require.NoError(t, err)

		orderRepo := new(MockCreateOrderRepository)
		courierRepo := new(MockAssignCourierRepository)
		uow := new(MockAssignUoW)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("CourierRepository").Return(courierRepo)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("Get", ctx, placed.ID()).Return(placed, nil).Once()
		courierRepo.On("Get", ctx, performer.ID()).Return(performer, nil).Once()
		orderRepo.On("HasOtherActiveDeliveries", ctx, performer.ID(), placed.ID()).Return(true, nil).Once()
		orderRepo.On("Update", ctx, placed).Return(nil).Once()
		courierRepo.On("Update", ctx, performer).Return(nil).Once()

		factory := new(MockAssignUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewTransitionOrderCommandHandler(factory)
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, courier.Busy, performer.Status())
	})

	t.Run("completion_by_another_courier_is_rejected", func(t *testing.T) {
		performer := newTestBusyCourier(t)
		placed := newTestInDeliveryOrder(t, performer.ID())
		deliveriesBefore := performer.TotalDeliveries()
		intruderID := kernel.NewUUID()

		cmd, err := commands.NewTransitionOrderCommand(placed.ID(), order.Delivered, &intruderID)
		require.NoError(t, err)

		orderRepo := new(MockCreateOrderRepository)
		courierRepo := new(MockAssignCourierRepository)
		uow := new(MockAssignUoW)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("CourierRepository").Return(courierRepo)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("Get", ctx, placed.ID()).Return(placed, nil).Once()

		factory := new(MockAssignUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewTransitionOrderCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrOrderBelongsToAnotherCourier)
		assert.Equal(t, order.InDelivery, placed.Status())
		assert.Equal(t, deliveriesBefore, performer.TotalDeliveries())
		courierRepo.AssertNotCalled(t, "Get")
		uow.AssertNotCalled(t, "Commit")
	})

	t.Run("pending_order_cannot_complete", func(t *testing.T) {
		placed := newTestPendingOrder(t)
		actorID := kernel.NewUUID()

		cmd, err := commands.NewTransitionOrderCommand(placed.ID(), order.Delivered, &actorID)
		require.NoError(t, err)

		orderRepo := new(MockCreateOrderRepository)
		courierRepo := new(MockAssignCourierRepository)
		uow := new(MockAssignUoW)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("CourierRepository").Return(courierRepo)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("Get", ctx, placed.ID()).Return(placed, nil).Once()

		factory := new(MockAssignUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewTransitionOrderCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestTransitionOrderCommandHandler_Cancel(t *testing.T) {
	ctx := t.Context()

	t.Run("courier_refusal_releases_courier", func(t *testing.T) {
		performer := newTestBusyCourier(t)
		courierID := performer.ID()
		placed := newTestInDeliveryOrder(t, courierID)
		deliveriesBefore := performer.TotalDeliveries()

		cmd, err := commands.NewTransitionOrderCommand(placed.ID(), order.Cancelled, &courierID)
		require.NoError(t, err)

		orderRepo := new(MockCreateOrderRepository)
		courierRepo := new(MockAssignCourierRepository)
		uow := new(MockAssignUoW)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("CourierRepository").Return(courierRepo)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("Get", ctx, placed.ID()).Return(placed, nil).Once()
		courierRepo.On("Get", ctx, courierID).Return(performer, nil).Once()
		orderRepo.On("HasOtherActiveDeliveries", ctx, courierID, placed.ID()).Return(false, nil).Once()
		orderRepo.On("Update", ctx, placed).Return(nil).Once()
		courierRepo.On("Update", ctx, performer).Return(nil).Once()

		factory := new(MockAssignUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewTransitionOrderCommandHandler(factory)
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, order.Cancelled, placed.Status())
		assert.True(t, placed.IsDeleted())
		assert.Equal(t, courier.Available, performer.Status())
		assert.Equal(t, deliveriesBefore, performer.TotalDeliveries())
	})

	t.Run("refusal_by_another_courier_is_rejected", func(t *testing.T) {
		performer := newTestBusyCourier(t)
		placed := newTestInDeliveryOrder(t, performer.ID())
		intruderID := kernel.NewUUID()

		cmd, err := commands.NewTransitionOrderCommand(placed.ID(), order.Cancelled, &intruderID)
		require.NoError(t, err)

		orderRepo := new(MockCreateOrderRepository)
		courierRepo := new(MockAssignCourierRepository)
		uow := new(MockAssignUoW)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("CourierRepository").Return(courierRepo)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("Get", ctx, placed.ID()).Return(placed, nil).Once()

		factory := new(MockAssignUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewTransitionOrderCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrOrderBelongsToAnotherCourier)
	})

	t.Run("client_cancels_pending_order", func(t *testing.T) {
		placed := newTestPendingOrder(t)

		cmd, err := commands.NewTransitionOrderCommand(placed.ID(), order.Cancelled, nil)
		require.NoError(t, err)

		orderRepo := new(MockCreateOrderRepository)
		courierRepo := new(MockAssignCourierRepository)
		uow := new(MockAssignUoW)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("CourierRepository").Return(courierRepo)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("Get", ctx, placed.ID()).Return(placed, nil).Once()
		orderRepo.On("Update", ctx, placed).Return(nil).Once()

		factory := new(MockAssignUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewTransitionOrderCommandHandler(factory)
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, order.Cancelled, placed.Status())
		assert.True(t, placed.IsDeleted())
	})

	t.Run("client_cannot_cancel_in_delivery_order", func(t *testing.T) {
		placed := newTestInDeliveryOrder(t, kernel.NewUUID())

		cmd, err := commands.NewTransitionOrderCommand(placed.ID(), order.Cancelled, nil)
		require.NoError(t, err)

		orderRepo := new(MockCreateOrderRepository)
		courierRepo := new(MockAssignCourierRepository)
		uow := new(MockAssignUoW)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("CourierRepository").Return(courierRepo)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("Get", ctx, placed.ID()).Return(placed, nil).Once()

		factory := new(MockAssignUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewTransitionOrderCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

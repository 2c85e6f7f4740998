package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"feedo/internal/core/application/usecases/commands"
	"feedo/internal/core/domain/model/courier"
	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/core/domain/model/order"
	"feedo/internal/core/ports"
)

type MockAssignCourierRepository struct{ mock.Mock }

func (m *MockAssignCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockAssignCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockAssignCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockAssignCourierRepository) Reserve(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockAssignCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockAssignUoW struct{ mock.Mock }

func (m *MockAssignUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAssignUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func newTestPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	placed, err := order.NewOrderFromCart(
		kernel.NewUUID(), kernel.NewUUID(), testBasket(t), "Lenina st, 1", "",
		time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return placed
}

func newTestAvailableCourier(t *testing.T) *courier.Courier {
	t.Helper()

	contact, err := kernel.NewContact("Free Courier", "", "free@example.com")
	require.NoError(t, err)

	c, err := courier.RestoreCourier(
		kernel.NewUUID(), contact, courier.VehicleBike,
		courier.Available, 4.5, 10, nil, false,
	)
	require.NoError(t, err)
	return c
}

func TestAssignCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	pending := newTestPendingOrder(t)
	free := newTestAvailableCourier(t)

	cmd, err := commands.NewAssignCourierCommand(pending.ID())
	require.NoError(t, err)

	orderRepo := new(MockCreateOrderRepository)
	courierRepo := new(MockAssignCourierRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once(),
		courierRepo.On("GetAllAvailable", ctx).Return([]*courier.Courier{free}, nil).Once(),
		orderRepo.On("Bind", ctx, pending).Return(nil).Once(),
		courierRepo.On("Reserve", ctx, free).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	assigned, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, assigned)
	assert.Equal(t, order.Assigned, pending.Status())
	require.NotNil(t, pending.CourierID())
	assert.True(t, pending.CourierID().IsEqual(free.ID()))
	assert.Equal(t, courier.Busy, free.Status())
	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_OrderNotPending(t *testing.T) {
	ctx := t.Context()

	pending := newTestPendingOrder(t)
	free := newTestAvailableCourier(t)
	require.NoError(t, pending.Assign(free.ID(), time.Now().UTC()))

	cmd, err := commands.NewAssignCourierCommand(pending.ID())
	require.NoError(t, err)

	orderRepo := new(MockCreateOrderRepository)
	courierRepo := new(MockAssignCourierRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	assigned, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, assigned)
	courierRepo.AssertNotCalled(t, "GetAllAvailable")
}

func TestAssignCourierCommandHandler_Handle_NoEligibleCouriers(t *testing.T) {
	ctx := t.Context()

	pending := newTestPendingOrder(t)
	cmd, err := commands.NewAssignCourierCommand(pending.ID())
	require.NoError(t, err)

	orderRepo := new(MockCreateOrderRepository)
	courierRepo := new(MockAssignCourierRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once(),
		courierRepo.On("GetAllAvailable", ctx).Return([]*courier.Courier{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	assigned, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, assigned)
	assert.Equal(t, order.Pending, pending.Status())
	orderRepo.AssertNotCalled(t, "Bind")
}

func TestAssignCourierCommandHandler_Handle_LostBindRace(t *testing.T) {
	ctx := t.Context()

	pending := newTestPendingOrder(t)
	free := newTestAvailableCourier(t)

	cmd, err := commands.NewAssignCourierCommand(pending.ID())
	require.NoError(t, err)

	orderRepo := new(MockCreateOrderRepository)
	courierRepo := new(MockAssignCourierRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once(),
		courierRepo.On("GetAllAvailable", ctx).Return([]*courier.Courier{free}, nil).Once(),
		orderRepo.On("Bind", ctx, pending).Return(ports.ErrOrderAlreadyAssigned).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	assigned, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, assigned)
	courierRepo.AssertNotCalled(t, "Reserve")
	uow.AssertNotCalled(t, "Commit")
}

func TestAssignCourierCommandHandler_Handle_LostCourierRace(t *testing.T) {
	ctx := t.Context()

	pending := newTestPendingOrder(t)
	free := newTestAvailableCourier(t)

	cmd, err := commands.NewAssignCourierCommand(pending.ID())
	require.NoError(t, err)

	orderRepo := new(MockCreateOrderRepository)
	courierRepo := new(MockAssignCourierRepository)
	uow := new(MockAssignUoW)

	// A parallel dispatch for another order claimed the courier between
	// GetAllAvailable and the conditional status update.
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once(),
		courierRepo.On("GetAllAvailable", ctx).Return([]*courier.Courier{free}, nil).Once(),
		orderRepo.On("Bind", ctx, pending).Return(nil).Once(),
		courierRepo.On("Reserve", ctx, free).Return(ports.ErrCourierAlreadyBusy).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	assigned, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, assigned)
	uow.AssertNotCalled(t, "Commit")
	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_GetOrderError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewAssignCourierCommand(kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockCreateOrderRepository)
	courierRepo := new(MockAssignCourierRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, cmd.OrderID()).Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
}

func TestAssignCourierCommandHandler_TryAssign(t *testing.T) {
	ctx := t.Context()

	t.Run("invalid_order_id", func(t *testing.T) {
		factory := new(MockAssignUoWFactory)
		handler := commands.NewAssignCourierCommandHandler(factory)

		_, err := handler.TryAssign(ctx, kernel.UUID{})

		require.Error(t, err)
		factory.AssertNotCalled(t, "Create")
	})
}

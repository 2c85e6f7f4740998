package commands

import (
	"context"
	"log/slog"
	"time"

	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/core/domain/model/order"
)

// DispatchTrigger starts a dispatch attempt for a freshly placed order.
// Returns whether a courier was bound. Implemented by AssignCourierCommandHandler.
type DispatchTrigger interface {
	TryAssign(ctx context.Context, orderID kernel.UUID) (bool, error)
}

// CreateOrderCommandHandler handles the business logic for order placement.
// Persists the order in Pending status and then triggers a best-effort
// dispatch attempt outside the creation transaction: a dispatch failure never
// fails the placement, the order simply stays Pending for the sweep to retry.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatch   DispatchTrigger
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderUoWFactory for transactional persistence and a DispatchTrigger
// for the post-commit assignment attempt.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	dispatch DispatchTrigger,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatch:   dispatch,
		logger:     logger,
	}
}

// Handle processes the order placement command.
// Builds the order aggregate from the cart snapshot, persists it atomically,
// and returns the placed order. The courier assignment attempt happens after
// the commit and its outcome only affects logging.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	placed, err := order.NewOrderFromCart(
		cmd.OrderID(),
		cmd.ClientID(),
		cmd.Basket(),
		cmd.DeliveryAddress(),
		cmd.DeliveryNotes(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	assigned, err := h.dispatch.TryAssign(ctx, placed.ID())
	switch {
	case err != nil:
		h.logger.WarnContext(ctx, "dispatch attempt after order placement failed",
			slog.String("order_id", placed.ID().String()),
			slog.Any("error", err),
		)
	case !assigned:
		h.logger.InfoContext(ctx, "no courier bound, order stays pending",
			slog.String("order_id", placed.ID().String()),
		)
	}

	return placed, nil
}

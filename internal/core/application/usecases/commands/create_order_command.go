package commands

import (
	"errors"
	"strings"

	"feedo/internal/core/domain/model/cart"
	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrCartIsEmpty               = errors.New("cart must contain at least one item")
)

// CreateOrderCommand represents a request to place a new order from a client's cart.
// Encapsulates the cart snapshot, the delivery destination, and optional notes.
//
// Example:
//
//	basket := cart.NewCart()
//	basket.AddItem(1, "Burger", price, 2, "")
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), clientID, basket, "Lenina st, 1", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	clientID        kernel.UUID
	basket          *cart.Cart
	deliveryAddress string
	deliveryNotes   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that both identifiers are valid, the cart is not empty,
// and the delivery address is present.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	basket *cart.Cart,
	deliveryAddress string,
	deliveryNotes string,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		deliveryNotes: strings.TrimSpace(deliveryNotes),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setClientID(clientID),
		command.setBasket(basket),
		command.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the client placing the order.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Basket returns the cart contents the order is built from.
func (c CreateOrderCommand) Basket() *cart.Cart {
	return c.basket
}

// DeliveryAddress returns the delivery destination.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryNotes returns optional instructions for the courier.
func (c CreateOrderCommand) DeliveryNotes() string {
	return c.deliveryNotes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setBasket(basket *cart.Cart) error {
	if basket == nil || basket.IsEmpty() {
		return ErrCartIsEmpty
	}

	c.basket = basket
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	deliveryAddress = strings.TrimSpace(deliveryAddress)
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

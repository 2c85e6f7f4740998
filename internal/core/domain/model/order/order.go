package order

import (
	"errors"
	"time"

	"feedo/internal/core/domain/model/cart"
	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/pkg/errs"
	"feedo/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrderFromCart or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrderFromCart or RestoreOrder")

	// ErrEmptyCart is returned when order creation is attempted on a cart
	// with no lines. Nothing is persisted in that case.
	ErrEmptyCart = errors.New("cannot create an order from an empty cart")

	// ErrCourierAlreadyAssigned is returned when a binding is attempted on an
	// order that already references a courier. Lost dispatch races surface as
	// this error and are treated as benign by callers.
	ErrCourierAlreadyAssigned = errors.New("order already has a courier assigned")

	// ErrDeliveryAddressIsRequired is returned when creating an order without
	// a delivery address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
)

// Order is the aggregate root for a persisted, priced delivery request.
// It owns an immutable set of item snapshots and carries the lifecycle
// status, courier binding, and delivery timestamps.
//
// Invariants:
//   - totalAmount is fixed at creation from the cart snapshot and never
//     recomputed from items afterward
//   - items are immutable history; they are set at construction only
//   - the courier reference, once set, is never cleared (kept for history
//     even after delivery or cancellation)
//   - status transitions follow the state machine in this package
type Order struct {
	id              kernel.UUID
	clientID        kernel.UUID
	courierID       *kernel.UUID
	status          Status
	totalAmount     kernel.Money
	deliveryAddress string
	deliveryNotes   string
	items           []Item
	createdAt       time.Time
	assignedAt      *time.Time
	deliveredAt     *time.Time
	deleted         bool

	guard guard.ConstructorGuard
}

// NewOrderFromCart creates a Pending order from a finalized cart plus
// delivery details. One item snapshot is captured per cart line, with unit
// price and subtotal fixed at call time; the order total is the cart total.
//
// Returns ErrEmptyCart for a cart with no lines.
func NewOrderFromCart(
	id kernel.UUID,
	clientID kernel.UUID,
	c *cart.Cart,
	deliveryAddress string,
	deliveryNotes string,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := clientID.Validate(); err != nil {
		return nil, err
	}
	if c == nil || c.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if deliveryAddress == "" {
		return nil, ErrDeliveryAddressIsRequired
	}

	lines := c.Lines()
	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		item, err := NewItem(kernel.NewUUID(), line.ProductID(), line.Name(), line.Quantity(), line.UnitPrice())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return &Order{
		id:              id,
		clientID:        clientID,
		status:          Pending,
		totalAmount:     c.TotalAmount(),
		deliveryAddress: deliveryAddress,
		deliveryNotes:   deliveryNotes,
		items:           items,
		createdAt:       createdAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order aggregate from persistent storage,
// including its item snapshots, courier binding, and timestamps. The restored
// order behaves identically to one created through NewOrderFromCart.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	courierID *kernel.UUID,
	status Status,
	totalAmount kernel.Money,
	deliveryAddress string,
	deliveryNotes string,
	items []Item,
	createdAt time.Time,
	assignedAt *time.Time,
	deliveredAt *time.Time,
	deleted bool,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := clientID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}
	if deliveryAddress == "" {
		return nil, ErrDeliveryAddressIsRequired
	}

	restored := make([]Item, len(items))
	copy(restored, items)

	return &Order{
		id:              id,
		clientID:        clientID,
		courierID:       courierID,
		status:          status,
		totalAmount:     totalAmount,
		deliveryAddress: deliveryAddress,
		deliveryNotes:   deliveryNotes,
		items:           restored,
		createdAt:       createdAt,
		assignedAt:      assignedAt,
		deliveredAt:     deliveredAt,
		deleted:         deleted,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identifier of the ordering client.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// CourierID returns the bound courier's ID, or nil if unassigned.
func (o *Order) CourierID() *kernel.UUID {
	return o.courierID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the order total fixed at creation time.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryNotes returns the free-form delivery notes, possibly empty.
func (o *Order) DeliveryNotes() string {
	return o.deliveryNotes
}

// Items returns a copy of the order's item snapshots in creation order.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignedAt returns when a courier was bound, or nil.
func (o *Order) AssignedAt() *time.Time {
	return o.assignedAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// IsDeleted reports whether the order is soft-deleted.
func (o *Order) IsDeleted() bool {
	return o.deleted
}

// Assign binds a courier chosen by the dispatch engine and moves the order
// to Assigned. Fails with ErrCourierAlreadyAssigned if a courier is already
// bound.
func (o *Order) Assign(courierID kernel.UUID, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil {
		return ErrCourierAlreadyAssigned
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.assignedAt = &at
	return nil
}

// Accept records a courier taking the order into delivery. From Pending the
// courier binds directly (claiming an offered order); from Assigned only the
// already-bound courier may start the delivery.
func (o *Order) Accept(courierID kernel.UUID, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil && !o.courierID.IsEqual(courierID) {
		return ErrCourierAlreadyAssigned
	}

	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.courierID == nil {
		o.courierID = &courierID
		o.assignedAt = &at
	}
	return nil
}

// Complete marks the order Delivered and records the delivery time.
// The courier binding stays in place for history.
func (o *Order) Complete(at time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &at
	return nil
}

// RefuseByCourier cancels an order the bound courier refuses to deliver.
// The order is soft-deleted; the courier reference is kept for history.
func (o *Order) RefuseByCourier() error {
	newStatus, err := o.status.CancelByCourier()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deleted = true
	return nil
}

// CancelByClient cancels an order at the client's request. Allowed only from
// Pending and Delivered; any other status leaves the order untouched.
func (o *Order) CancelByClient() error {
	newStatus, err := o.status.CancelByClient()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deleted = true
	return nil
}

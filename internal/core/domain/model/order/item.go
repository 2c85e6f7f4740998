package order

import (
	"errors"
	"fmt"

	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/pkg/errs"
)

// ErrItemSubtotalMismatch is returned when restoring an item whose stored
// subtotal does not equal unit price times quantity.
var ErrItemSubtotalMismatch = errors.New("item subtotal does not match unit price times quantity")

// MaxItemQuantity bounds a single order line. Together with kernel.MaxCents
// it keeps unit price times quantity well inside int64.
const MaxItemQuantity = 10_000

// Item is an immutable priced line captured from the cart when the order was
// created. The subtotal is computed once and stored, so a later catalog price
// change can never alter order history.
type Item struct {
	id        kernel.UUID
	productID int64
	name      string
	quantity  int
	unitPrice kernel.Money
	subtotal  kernel.Money
}

// NewItem creates an item snapshot from a cart line, computing and fixing the
// subtotal. Quantity must be between 1 and MaxItemQuantity.
func NewItem(id kernel.UUID, productID int64, name string, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if quantity > MaxItemQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxItemQuantity)
	}

	return Item{
		id:        id,
		productID: productID,
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
		subtotal:  unitPrice.MultiplyQuantity(quantity),
	}, nil
}

// RestoreItem reconstructs an item from persistence, keeping the stored
// subtotal. The stored value must still equal unitPrice × quantity.
func RestoreItem(
	id kernel.UUID,
	productID int64,
	name string,
	quantity int,
	unitPrice kernel.Money,
	subtotal kernel.Money,
) (Item, error) {
	item, err := NewItem(id, productID, name, quantity, unitPrice)
	if err != nil {
		return Item{}, err
	}
	if !item.subtotal.IsEqual(subtotal) {
		return Item{}, ErrItemSubtotalMismatch
	}
	return item, nil
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the external catalog reference.
func (i Item) ProductID() int64 {
	return i.productID
}

// Name returns the display name captured from the cart line.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot per unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns the stored line total.
func (i Item) Subtotal() kernel.Money {
	return i.subtotal
}

package cart

import (
	"feedo/internal/core/domain/model/kernel"
)

// Line is a single cart entry: a product reference with the display name the
// client chose (base name plus rendered extras), a unit price snapshot, a
// quantity, and an optional image reference for display.
type Line struct {
	productID int64
	name      string
	unitPrice kernel.Money
	quantity  int
	imageRef  string
}

// ProductID returns the external catalog reference of the line.
func (l Line) ProductID() int64 {
	return l.productID
}

// Name returns the display name, including rendered extras.
func (l Line) Name() string {
	return l.name
}

// UnitPrice returns the price snapshot captured when the line was added.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the line quantity, always at least 1 for a stored line.
func (l Line) Quantity() int {
	return l.quantity
}

// ImageRef returns the display image reference, possibly empty.
func (l Line) ImageRef() string {
	return l.imageRef
}

// Subtotal returns unit price times quantity.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.MultiplyQuantity(l.quantity)
}

// Cart accumulates lines for a checkout session. Insertion order is kept for
// display; totals do not depend on it. The zero value is an empty, usable cart.
//
// Example:
//
//	var c cart.Cart
//	price, _ := kernel.MoneyFromFloat(8.00)
//	c.AddItem(1, "Burger", price, 2, "")
//	total := c.TotalAmount() // 16.00
type Cart struct {
	lines []Line
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem merges the quantity into an existing line with the same
// (productID, name) pair, or appends a new line. A non-positive quantity is
// ignored; stored lines always carry quantity >= 1.
func (c *Cart) AddItem(productID int64, name string, unitPrice kernel.Money, quantity int, imageRef string) {
	if quantity <= 0 {
		return
	}

	for i := range c.lines {
		if c.lines[i].productID == productID && c.lines[i].name == name {
			c.lines[i].quantity += quantity
			return
		}
	}

	c.lines = append(c.lines, Line{
		productID: productID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		imageRef:  imageRef,
	})
}

// UpdateQuantity sets the quantity of the first line matching productID.
// A quantity <= 0 removes the line. Unknown productID is a no-op.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	for i := range c.lines {
		if c.lines[i].productID != productID {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].quantity = quantity
		}
		return
	}
}

// RemoveItem removes the first line matching productID. Unknown productID is a no-op.
func (c *Cart) RemoveItem(productID int64) {
	for i := range c.lines {
		if c.lines[i].productID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// TotalAmount returns the sum of line subtotals.
func (c *Cart) TotalAmount() kernel.Money {
	var total kernel.Money
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// TotalItems returns the sum of line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.lines {
		total += l.quantity
	}
	return total
}

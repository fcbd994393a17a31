package pos

import "iter"

// CartLine is one product in the cart, with name and price denormalized at
// the time the product was added. Quantity is always at least 1.
type CartLine struct {
	ProductID string
	Name      string
	Price     Money
	Qty       int
}

// LineTotal returns price times quantity for this line.
func (l CartLine) LineTotal() Money { return l.Price.MulInt(l.Qty) }

// Cart is the transient list of lines being sold. It is never persisted:
// a cart lives only as long as the checkout it feeds.
//
// There is at most one line per product; adding a product already in the
// cart increments its quantity instead of duplicating the line.
type Cart struct {
	lines []CartLine
}

// NewCart returns an empty cart.
func NewCart() *Cart { return &Cart{} }

func (c *Cart) find(productID string) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// Add puts one unit of the product in the cart, snapshotting its current
// name and price. Stock is not checked here; only checkout enforces it.
func (c *Cart) Add(p Product) {
	if i := c.find(p.ID); i >= 0 {
		c.lines[i].Qty++
		return
	}
	c.lines = append(c.lines, CartLine{ProductID: p.ID, Name: p.Name, Price: p.Price, Qty: 1})
}

// SetQuantity sets a line's quantity, flooring at 1. Lines leave the cart
// only through Remove, never by counting down.
func (c *Cart) SetQuantity(productID string, qty int) {
	i := c.find(productID)
	if i < 0 {
		return
	}
	if qty < 1 {
		qty = 1
	}
	c.lines[i].Qty = qty
}

// Remove deletes the line unconditionally.
func (c *Cart) Remove(productID string) {
	i := c.find(productID)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// Clear empties the cart.
func (c *Cart) Clear() { c.lines = nil }

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Len returns the number of lines in the cart.
func (c *Cart) Len() int { return len(c.lines) }

// Lines returns an iterator over the cart lines in insertion order.
func (c *Cart) Lines() iter.Seq[CartLine] {
	return func(yield func(CartLine) bool) {
		for _, l := range c.lines {
			if !yield(l) {
				return
			}
		}
	}
}

// Subtotal sums price times quantity over all lines. It is recomputed on
// every call, never cached.
func (c *Cart) Subtotal() Money {
	var total Money
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

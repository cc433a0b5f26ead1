// Package cart is the mutable staging area for an order before checkout.
// It survives restarts through the persisted cart partition but is never
// a source of truth for reporting.
package cart

import (
	"kasir/apperr"
	"kasir/model"
)

type Cart struct {
	lines []*model.CartLine
}

func New() *Cart {
	return &Cart{}
}

// Restore replaces the cart contents with persisted lines.
func (c *Cart) Restore(lines []*model.CartLine) {
	c.lines = c.lines[:0]
	for _, l := range lines {
		c.lines = append(c.lines, l.Clone())
	}
}

// Lines returns copies of all lines in insertion order.
func (c *Cart) Lines() []*model.CartLine {
	out := make([]*model.CartLine, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, l.Clone())
	}
	return out
}

// AddLine stages quantity units of a product. An existing line for the
// same product is incremented; otherwise a new line snapshots the
// product's current name, price and cost. Adding beyond a finite stock
// is hard-blocked.
func (c *Cart) AddLine(p *model.Product, quantity int64) error {
	if quantity <= 0 {
		return apperr.Validationf("jumlah harus lebih dari 0")
	}
	var staged int64
	if existing := c.find(p.ID); existing != nil {
		staged = existing.Quantity
	}
	if p.Stock != nil && staged+quantity > *p.Stock {
		return &apperr.InsufficientStockError{
			ProductID: p.ID,
			Name:      p.Name,
			Requested: staged + quantity,
			Available: *p.Stock,
		}
	}
	if existing := c.find(p.ID); existing != nil {
		existing.Quantity += quantity
		return nil
	}
	c.lines = append(c.lines, &model.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Cost:      p.Cost,
		Quantity:  quantity,
	})
	return nil
}

// SetQuantity overwrites a line's quantity. Zero or negative removes the
// line. Unknown product ids are reported as not found.
func (c *Cart) SetQuantity(productID, quantity int64) error {
	line := c.find(productID)
	if line == nil {
		return &apperr.NotFoundError{Entity: "item keranjang", ID: productID}
	}
	if quantity <= 0 {
		c.RemoveLine(productID)
		return nil
	}
	line.Quantity = quantity
	return nil
}

func (c *Cart) RemoveLine(productID int64) bool {
	for i, l := range c.lines {
		if l.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.lines = c.lines[:0]
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Subtotal is sum(price*quantity) over all lines.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, l := range c.lines {
		sum += l.Price * l.Quantity
	}
	return sum
}

// EstimatedProfit is sum((price-cost)*quantity) over all lines. It is an
// estimate only until commit freezes the lines.
func (c *Cart) EstimatedProfit() int64 {
	var sum int64
	for _, l := range c.lines {
		sum += (l.Price - l.Cost) * l.Quantity
	}
	return sum
}

// ItemCount is the total staged quantity across lines.
func (c *Cart) ItemCount() int64 {
	var n int64
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) find(productID int64) *model.CartLine {
	for _, l := range c.lines {
		if l.ProductID == productID {
			return l
		}
	}
	return nil
}

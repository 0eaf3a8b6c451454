package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one entry in the session cart. It snapshots the product's
// name, price, image and stock as they were when the line was added.
type CartLine struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url"`
	Stock     int             `json:"stock"` // Stock at add time, used to clamp quantity updates
	Quantity  int             `json:"quantity"`
}

// Subtotal returns price * quantity for this line
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the session-resident shopping cart: a mapping from product id to
// line item. It has no persistent identity (it lives and dies with the
// session), so it is modeled as a plain value that handlers round-trip
// through the session store.
type Cart struct {
	Lines map[uuid.UUID]CartLine `json:"lines"`
}

// NewCart returns an empty cart
func NewCart() *Cart {
	return &Cart{Lines: make(map[uuid.UUID]CartLine)}
}

// Line returns the line for a product id, if present
func (c *Cart) Line(productID uuid.UUID) (CartLine, bool) {
	line, ok := c.Lines[productID]
	return line, ok
}

// Put inserts or replaces a line
func (c *Cart) Put(line CartLine) {
	if c.Lines == nil {
		c.Lines = make(map[uuid.UUID]CartLine)
	}
	c.Lines[line.ProductID] = line
}

// Remove deletes the line if present; removing an absent line is a no-op
func (c *Cart) Remove(productID uuid.UUID) {
	delete(c.Lines, productID)
}

// CartTotals is the derived view of a cart: count = sum of quantities,
// total = sum of price * quantity over all lines.
type CartTotals struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// Totals computes the cart totals. Pure function of current cart state.
func (c *Cart) Totals() CartTotals {
	totals := CartTotals{Total: decimal.Zero}
	for _, line := range c.Lines {
		totals.Count += line.Quantity
		totals.Total = totals.Total.Add(line.Subtotal())
	}
	return totals
}

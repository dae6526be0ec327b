package entity

import (
	"errors"

	"github.com/castrillo/cafepos-api/internal/domain/enum"
	"github.com/google/uuid"
)

// ErrProductGone is returned when a cart line references a product that no
// longer exists in the catalog.
var ErrProductGone = errors.New("product no longer in catalog")

// ProductLookup resolves a product by id from the live catalog. It returns
// (nil, nil) when the product does not exist.
type ProductLookup func(id uuid.UUID) (*Product, error)

// CartLine is one product entry in a cart. It carries no price: unit prices
// are re-resolved from the live catalog every time the total is computed, so
// a tier switch or a price edit reprices the whole cart instantly.
type CartLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// Cart holds the in-progress transaction for one cashier session. Lines keep
// insertion order and each product appears at most once.
type Cart struct {
	tier  enum.CustomerTier
	lines []CartLine
}

// NewCart returns an empty cart at the regular customer tier
func NewCart() *Cart {
	return &Cart{tier: enum.TierCustomer}
}

// AddProduct increments the quantity of an existing line for the product or
// appends a new line with quantity 1. The caller resolves the product first so
// a vanished catalog entry is rejected before it enters the cart.
func (c *Cart) AddProduct(p *Product) {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{ProductID: p.ID, Quantity: 1})
}

// ChangeQuantity adds delta (positive or negative) to the line's quantity.
// A resulting quantity of zero or less removes the line. An absent product id
// is a no-op, not an error.
func (c *Cart) ChangeQuantity(productID uuid.UUID, delta int) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity += delta
			if c.lines[i].Quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			return
		}
	}
}

// RemoveItem removes the line unconditionally; no-op if absent
func (c *Cart) RemoveItem(productID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetTier switches the customer tier. Nothing per line changes; the tier only
// affects subsequent total computations.
func (c *Cart) SetTier(tier enum.CustomerTier) {
	c.tier = tier
}

// Tier returns the current customer tier
func (c *Cart) Tier() enum.CustomerTier {
	return c.tier
}

// IsEmpty reports whether no lines remain
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart lines in insertion order
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalCents sums unit price times quantity over all lines, re-resolving each
// product's current price through the lookup at call time.
func (c *Cart) TotalCents(lookup ProductLookup) (int64, error) {
	var total int64
	for _, line := range c.lines {
		product, err := lookup(line.ProductID)
		if err != nil {
			return 0, err
		}
		if product == nil {
			return 0, ErrProductGone
		}
		total += product.UnitPriceCents(c.tier) * int64(line.Quantity)
	}
	return total, nil
}

// Snapshot freezes the cart into immutable sale lines priced at the current
// tier. Used once, at settlement.
func (c *Cart) Snapshot(lookup ProductLookup) ([]SaleLine, error) {
	lines := make([]SaleLine, 0, len(c.lines))
	for _, line := range c.lines {
		product, err := lookup(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductGone
		}
		unit := product.UnitPriceCents(c.tier)
		lines = append(lines, SaleLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   unit,
			Subtotal:    unit * int64(line.Quantity),
		})
	}
	return lines, nil
}

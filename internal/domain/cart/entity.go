package cart

import (
	"github.com/your-org/storefront-client/internal/domain/catalog"
)

// Line is a single cart entry
type Line struct {
	MenuItem catalog.MenuItem `json:"menuItem"`
	Quantity int              `json:"quantity"`
}

// Subtotal returns price times quantity for the line
func (l Line) Subtotal() catalog.Money {
	return l.MenuItem.Price.Times(l.Quantity)
}

// Totals are derived from the cart lines and have no independent setter.
type Totals struct {
	Price     catalog.Money `json:"totalPrice"`
	ItemCount int           `json:"itemCount"`
}

// Cart is the shopper's cart. The zero value is the empty cart.
type Cart struct {
	lines  []Line
	totals Totals
}

// New builds a cart from lines, computing totals in the same step. Lines with
// a non-positive quantity are dropped and repeated menu items are folded into
// the first occurrence so the cart holds at most one line per item.
func New(lines []Line) Cart {
	kept := make([]Line, 0, len(lines))
	seen := make(map[string]int, len(lines))

	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		if i, ok := seen[l.MenuItem.ID]; ok && l.MenuItem.ID != "" {
			kept[i].Quantity += l.Quantity
			continue
		}
		seen[l.MenuItem.ID] = len(kept)
		kept = append(kept, l)
	}

	return Cart{lines: kept, totals: calculateTotals(kept)}
}

// Empty returns the empty cart
func Empty() Cart {
	return Cart{}
}

// Lines returns a copy of the cart lines
func (c Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Totals returns the derived totals
func (c Cart) Totals() Totals {
	return c.totals
}

// Len returns the number of distinct lines
func (c Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines
func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Line returns the line for a menu item, if present
func (c Cart) Line(menuItemID string) (Line, bool) {
	for _, l := range c.lines {
		if l.MenuItem.ID == menuItemID {
			return l, true
		}
	}
	return Line{}, false
}

func calculateTotals(lines []Line) Totals {
	var totals Totals
	for _, l := range lines {
		totals.Price += l.Subtotal()
		totals.ItemCount += l.Quantity
	}
	return totals
}

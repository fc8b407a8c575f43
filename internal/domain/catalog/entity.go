package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in minor units (cents)
type Money int64

// maxPrice bounds decoded amounts, in major units, well inside int64 cents.
const maxPrice = 1e15

// MoneyFromFloat converts a decimal amount to cents, rounding half away from zero.
func MoneyFromFloat(v float64) Money {
	return Money(math.Round(v * 100))
}

// Times multiplies the amount by a quantity
func (m Money) Times(qty int) Money {
	return m * Money(qty)
}

// Float returns the amount in major units
func (m Money) Float() float64 {
	return float64(m) / 100
}

// String formats the amount with two decimals
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON writes the amount as a decimal number
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if raw == "" || raw == "null" {
		*m = 0
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid price %q: not a finite number", raw)
	}
	if v < 0 {
		return fmt.Errorf("invalid price %q: must not be negative", raw)
	}
	if v >= maxPrice {
		return fmt.Errorf("invalid price %q: out of range", raw)
	}

	*m = MoneyFromFloat(v)
	return nil
}

// Category is a menu category
type Category struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// CategoryRef points a menu item at its category. The API sends either a
// bare string or the populated category document.
type CategoryRef struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name,omitempty"`
}

// UnmarshalJSON decodes both the string and the object form
func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = CategoryRef{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		// A bare string may be either an id or a name; Resolve decides.
		*r = CategoryRef{ID: s, Name: s}
		return nil
	}

	var obj struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("invalid category reference: %w", err)
	}
	*r = CategoryRef{ID: obj.ID, Name: obj.Name}
	return nil
}

// IsZero reports whether the reference is empty
func (r CategoryRef) IsZero() bool {
	return r.ID == "" && r.Name == ""
}

// MenuItem is a dish on the menu
type MenuItem struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Price       Money       `json:"price"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Category    CategoryRef `json:"category"`
}

// Index looks categories up by id.
type Index map[string]Category

// NewIndex builds an Index over the given categories
func NewIndex(categories []Category) Index {
	idx := make(Index, len(categories))
	for _, c := range categories {
		if c.ID != "" {
			idx[c.ID] = c
		}
	}
	return idx
}

// CategoryName resolves the category name of a menu item. A populated
// reference wins; a bare reference is looked up by id and otherwise taken to
// be the name itself.
func (idx Index) CategoryName(item MenuItem) (string, bool) {
	ref := item.Category
	if ref.IsZero() {
		return "", false
	}
	if ref.ID != ref.Name && ref.Name != "" {
		return ref.Name, true
	}
	if c, ok := idx[ref.ID]; ok && c.Name != "" {
		return c.Name, true
	}
	if ref.Name != "" {
		return ref.Name, true
	}
	return "", false
}

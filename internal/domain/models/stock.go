package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Stock maps item names to quantities in hand. It is the system's only
// persistent state. Two rules hold at every mutation site: stored quantities
// are strictly positive (an item driven to zero is deleted, never kept as a
// zero entry), and iteration follows insertion order, including across JSON
// round-trips.
type Stock struct {
	quantities map[string]int
	order      []string
}

// Item is one stock entry, used for ordered iteration.
type Item struct {
	Name     string
	Quantity int
}

// NewStock returns an empty stock mapping.
func NewStock() *Stock {
	return &Stock{quantities: make(map[string]int)}
}

// Quantity reports the units held for item, 0 when absent.
func (s *Stock) Quantity(item string) int {
	return s.quantities[item]
}

// Has reports whether item is present in the mapping.
func (s *Stock) Has(item string) bool {
	_, ok := s.quantities[item]
	return ok
}

// Set stores qty units of item. A qty of zero or less deletes the entry
// instead; zero quantities are never stored.
func (s *Stock) Set(item string, qty int) {
	if qty <= 0 {
		s.Delete(item)
		return
	}
	if _, ok := s.quantities[item]; !ok {
		s.order = append(s.order, item)
	}
	s.quantities[item] = qty
}

// Delete removes item from the mapping. Deleting an absent item is a no-op.
func (s *Stock) Delete(item string) {
	if _, ok := s.quantities[item]; !ok {
		return
	}
	delete(s.quantities, item)
	for i, name := range s.order {
		if name == item {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of distinct items held.
func (s *Stock) Len() int {
	return len(s.quantities)
}

// Items returns all entries in insertion order.
func (s *Stock) Items() []Item {
	items := make([]Item, 0, len(s.order))
	for _, name := range s.order {
		items = append(items, Item{Name: name, Quantity: s.quantities[name]})
	}
	return items
}

// Equal reports whether both stocks hold the same items at the same
// quantities, regardless of insertion order.
func (s *Stock) Equal(other *Stock) bool {
	if s.Len() != other.Len() {
		return false
	}
	for name, qty := range s.quantities {
		if other.quantities[name] != qty {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the stock as a JSON object with keys in insertion
// order.
func (s *Stock) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", s.quantities[name])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of item names to non-negative integer
// quantities, keeping the file's key order as insertion order. Any other
// top-level shape, a fractional value or a negative value is an error. Zero
// values decode but are dropped, per the invariant above.
func (s *Stock) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read opening token: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("top-level value must be a JSON object, got %v", tok)
	}

	s.quantities = make(map[string]int)
	s.order = nil

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("object key is not a string: %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read value for %q: %w", name, err)
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return fmt.Errorf("quantity for %q is not a number: %v", name, valTok)
		}
		qty, err := num.Int64()
		if err != nil {
			return fmt.Errorf("quantity for %q is not an integer: %w", name, err)
		}
		if qty < 0 {
			return fmt.Errorf("quantity for %q is negative: %d", name, qty)
		}

		s.Set(name, int(qty))
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read closing token: %w", err)
	}
	return nil
}

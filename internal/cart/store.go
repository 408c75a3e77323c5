package cart

import (
	"github.com/shopspring/decimal"

	"github.com/emberworks/forgefront-backend/internal/catalog"
)

// Line is one product's entry in the cart. UnitPrice is snapshotted when the
// product is first added and held fixed for the life of the line, even if the
// catalog price moves afterwards. A line with quantity <= 0 never exists; it
// is removed instead.
type Line struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Store owns the cart. All mutations go through its methods; readers only
// ever see copies via Snapshot.
type Store struct {
	lines map[string]*Line
	order []string
}

func NewStore() *Store {
	return &Store{lines: map[string]*Line{}}
}

// AddOne merges the product into the cart. An existing line gains one unit and
// keeps its original price snapshot; a new line starts at quantity 1 with the
// price captured now.
func (s *Store) AddOne(p catalog.Product) Line {
	if line, ok := s.lines[p.ID]; ok {
		line.Quantity++
		return *line
	}
	line := &Line{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Quantity:  1,
	}
	s.lines[p.ID] = line
	s.order = append(s.order, p.ID)
	return *line
}

// UpdateQuantity applies a signed delta, flooring at zero. A line reaching
// zero is deleted. An unknown id is a no-op: absence is already the
// post-condition.
func (s *Store) UpdateQuantity(id string, delta int) {
	line, ok := s.lines[id]
	if !ok {
		return
	}
	next := line.Quantity + delta
	if next <= 0 {
		s.remove(id)
		return
	}
	line.Quantity = next
}

// RemoveAll deletes the line regardless of quantity.
func (s *Store) RemoveAll(id string) {
	line, ok := s.lines[id]
	if !ok {
		return
	}
	s.UpdateQuantity(id, -line.Quantity)
}

// Clear empties the cart. Called once, after a successful order submission.
func (s *Store) Clear() {
	s.lines = map[string]*Line{}
	s.order = nil
}

// Snapshot returns the lines in insertion order. The copies are detached;
// mutating them never reaches the store.
func (s *Store) Snapshot() []Line {
	out := make([]Line, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.lines[id])
	}
	return out
}

// Len reports the number of distinct lines.
func (s *Store) Len() int {
	return len(s.order)
}

func (s *Store) remove(id string) {
	delete(s.lines, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

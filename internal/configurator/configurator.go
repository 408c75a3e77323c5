package configurator

import (
	"math"

	pkgerrors "github.com/emberworks/forgefront-backend/pkg/errors"
)

// LengthGrid constrains the numeric length attribute to a [min, max, step] grid.
type LengthGrid struct {
	Min  float64
	Max  float64
	Step float64
}

// Snap maps a raw value to the nearest valid grid point. Out-of-range input
// clamps to the boundary instead of being rejected.
func (g LengthGrid) Snap(value float64) float64 {
	if value <= g.Min {
		return g.Min
	}
	if value >= g.Max {
		return g.Max
	}
	steps := math.Round((value - g.Min) / g.Step)
	snapped := g.Min + steps*g.Step
	if snapped > g.Max {
		snapped = g.Max
	}
	return snapped
}

// attributeState tracks the current position within an ordered option domain.
// The index is stored explicitly; selection is never recovered by value search,
// so two equal option entries stay distinguishable.
type attributeState struct {
	options []string
	index   int
}

func (a *attributeState) value() string {
	return a.options[a.index]
}

// Spec is one in-progress customization session: four cyclic enumerated
// attributes plus the gridded length. One Spec exists per session and is
// discarded on submit or reset.
type Spec struct {
	attrs  map[string]*attributeState
	order  []string
	grid   LengthGrid
	length float64
}

// Selection is a read-only view of one attribute's state.
type Selection struct {
	Attribute string
	Value     string
	Options   []string
}

// NewSpec starts a customization session with every attribute on its first
// option and the length at the grid midpoint.
func NewSpec() *Spec {
	s := &Spec{
		attrs: map[string]*attributeState{},
		grid:  defaultLengthGrid,
	}
	for _, def := range defaultAttributes {
		options := make([]string, len(def.options))
		copy(options, def.options)
		s.attrs[def.name] = &attributeState{options: options}
		s.order = append(s.order, def.name)
	}
	s.length = s.grid.Snap((s.grid.Min + s.grid.Max) / 2)
	return s
}

// Advance moves the attribute to its next option, wrapping at the end.
func (s *Spec) Advance(attribute string) (string, error) {
	state, err := s.lookup(attribute)
	if err != nil {
		return "", err
	}
	state.index = (state.index + 1) % len(state.options)
	return state.value(), nil
}

// Retreat moves the attribute to its previous option, wrapping at the start.
func (s *Spec) Retreat(attribute string) (string, error) {
	state, err := s.lookup(attribute)
	if err != nil {
		return "", err
	}
	n := len(state.options)
	state.index = (state.index - 1 + n) % n
	return state.value(), nil
}

// Selected returns the attribute's current value.
func (s *Spec) Selected(attribute string) (string, error) {
	state, err := s.lookup(attribute)
	if err != nil {
		return "", err
	}
	return state.value(), nil
}

// Selections returns every attribute's state in declaration order.
func (s *Spec) Selections() []Selection {
	out := make([]Selection, 0, len(s.order))
	for _, name := range s.order {
		state := s.attrs[name]
		options := make([]string, len(state.options))
		copy(options, state.options)
		out = append(out, Selection{
			Attribute: name,
			Value:     state.value(),
			Options:   options,
		})
	}
	return out
}

// SetLength snaps the value onto the grid and stores it, returning the result.
func (s *Spec) SetLength(value float64) float64 {
	s.length = s.grid.Snap(value)
	return s.length
}

// Length returns the current length in centimeters.
func (s *Spec) Length() float64 {
	return s.length
}

// Grid returns the length constraints.
func (s *Spec) Grid() LengthGrid {
	return s.grid
}

// Reset restarts the session from the defaults.
func (s *Spec) Reset() {
	fresh := NewSpec()
	s.attrs = fresh.attrs
	s.order = fresh.order
	s.grid = fresh.grid
	s.length = fresh.length
}

func (s *Spec) lookup(attribute string) (*attributeState, error) {
	state, ok := s.attrs[attribute]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnknownAttribute, "attribute not in spec").
			WithDetails(map[string]any{"attribute": attribute})
	}
	return state, nil
}

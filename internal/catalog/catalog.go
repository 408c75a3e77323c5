package catalog

import (
	"github.com/shopspring/decimal"

	pkgerrors "github.com/emberworks/forgefront-backend/pkg/errors"
)

// Product is one purchasable entry in the catalog. Immutable once registered.
type Product struct {
	ID              string
	Name            string
	UnitPrice       decimal.Decimal
	ColorOrMaterial string
	Description     string
	ModelRef        string
}

// Registry exposes the fixed product list. Purely data, no side effects.
type Registry struct {
	byID  map[string]Product
	order []string
}

// NewRegistry builds a registry over the provided products. Later entries with
// a duplicate id overwrite earlier ones but keep the original position.
func NewRegistry(products []Product) *Registry {
	r := &Registry{byID: make(map[string]Product, len(products))}
	for _, p := range products {
		if _, exists := r.byID[p.ID]; !exists {
			r.order = append(r.order, p.ID)
		}
		r.byID[p.ID] = p
	}
	return r
}

// Get returns the product for the given id.
func (r *Registry) Get(id string) (Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return p, nil
}

// List returns all products in registration order.
func (r *Registry) List() []Product {
	out := make([]Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

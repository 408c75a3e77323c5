package configurator

import (
	"github.com/emberworks/forgefront-backend/internal/catalog"
	"github.com/emberworks/forgefront-backend/internal/configurator"
	"github.com/emberworks/forgefront-backend/pkg/types"
)

type selectionView struct {
	Attribute string   `json:"attribute"`
	Value     string   `json:"value"`
	Options   []string `json:"options"`
}

type gridView struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

type productPreview struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

type specView struct {
	Selections      []selectionView `json:"selections"`
	Length          float64         `json:"length"`
	Grid            gridView        `json:"grid"`
	DisplayCategory string          `json:"display_category"`
	Preview         productPreview  `json:"preview"`
}

func newSpecView(spec *configurator.Spec) specView {
	selections := spec.Selections()
	views := make([]selectionView, 0, len(selections))
	for _, sel := range selections {
		views = append(views, selectionView{
			Attribute: sel.Attribute,
			Value:     sel.Value,
			Options:   sel.Options,
		})
	}

	grid := spec.Grid()
	return specView{
		Selections:      views,
		Length:          spec.Length(),
		Grid:            gridView{Min: grid.Min, Max: grid.Max, Step: grid.Step},
		DisplayCategory: spec.DisplayCategory(),
		Preview:         newProductPreview(spec.BuildProduct()),
	}
}

func newProductPreview(p catalog.Product) productPreview {
	return productPreview{
		ID:          p.ID,
		Name:        p.Name,
		Price:       types.FormatMoney(p.UnitPrice),
		Description: p.Description,
	}
}

type addResponse struct {
	Product  productPreview `json:"product"`
	Quantity int            `json:"quantity"`
}

func newAddResponse(p catalog.Product, quantity int) addResponse {
	return addResponse{Product: newProductPreview(p), Quantity: quantity}
}

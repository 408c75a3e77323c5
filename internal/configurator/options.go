package configurator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/emberworks/forgefront-backend/internal/catalog"
)

// Attribute names accepted by Advance/Retreat.
const (
	AttrWood      = "wood"
	AttrTang      = "tang"
	AttrBladeType = "blade_type"
	AttrSteel     = "steel"
)

type attributeDef struct {
	name    string
	options []string
}

var defaultAttributes = []attributeDef{
	{name: AttrWood, options: []string{"Oak", "Walnut", "Maple", "Ebony", "Rosewood"}},
	{name: AttrTang, options: []string{"Full", "Partial", "Hidden"}},
	{name: AttrBladeType, options: []string{"Dagger", "Chef", "Hunting", "Tanto", "Bowie"}},
	{name: AttrSteel, options: []string{"Carbon", "Stainless", "Damascus", "Tool"}},
}

var defaultLengthGrid = LengthGrid{Min: 10, Max: 30, Step: 0.5}

// DefaultDisplayCategory is used for blade types outside the known set.
const DefaultDisplayCategory = "Custom Blades"

var displayCategories = map[string]string{
	"dagger":  "Daggers",
	"chef":    "Kitchen Cutlery",
	"hunting": "Outdoor",
	"tanto":   "Tactical",
	"bowie":   "Outdoor",
}

// DisplayCategory maps the current blade type to a storefront section token.
// Unknown blade types degrade to the default; this never fails.
func (s *Spec) DisplayCategory() string {
	state, ok := s.attrs[AttrBladeType]
	if !ok {
		return DefaultDisplayCategory
	}
	if category, ok := displayCategories[strings.ToLower(state.value())]; ok {
		return category
	}
	return DefaultDisplayCategory
}

var steelBasePrices = map[string]decimal.Decimal{
	"Carbon":    decimal.NewFromInt(120),
	"Stainless": decimal.NewFromInt(140),
	"Damascus":  decimal.NewFromInt(220),
	"Tool":      decimal.NewFromInt(160),
}

var pricePerCentimeter = decimal.NewFromFloat(4.5)

// BuildProduct materializes the current spec as a one-off product so a
// configured knife can be carted like any catalog entry. The id is
// deterministic in the selections, so carting the identical configuration
// twice merges into one line.
func (s *Spec) BuildProduct() catalog.Product {
	wood := s.attrs[AttrWood].value()
	tang := s.attrs[AttrTang].value()
	blade := s.attrs[AttrBladeType].value()
	steel := s.attrs[AttrSteel].value()

	price := steelBasePrices[steel]
	if price.IsZero() {
		price = steelBasePrices["Carbon"]
	}
	price = price.Add(pricePerCentimeter.Mul(decimal.NewFromFloat(s.length)))

	id := strings.ToLower(fmt.Sprintf("custom-%s-%s-%s-%s-%s",
		blade, steel, wood, tang, strings.ReplaceAll(fmt.Sprintf("%.1f", s.length), ".", "_")))

	return catalog.Product{
		ID:              id,
		Name:            fmt.Sprintf("Custom %s Knife", blade),
		UnitPrice:       price,
		ColorOrMaterial: strings.ToLower(steel),
		Description: fmt.Sprintf("%.1fcm %s blade in %s steel, %s tang, %s handle.",
			s.length, strings.ToLower(blade), strings.ToLower(steel), strings.ToLower(tang), strings.ToLower(wood)),
		ModelRef: fmt.Sprintf("models/%s.stl", strings.ToLower(blade)),
	}
}
